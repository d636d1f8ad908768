package annotate

import (
	"context"
	"errors"
	"sync"

	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/config"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/jpred"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/segment"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/store"
)

// status is what happened to an entry in a run
type status int

const (
	// annotated entries had Jpred results that were parsed and scored
	annotated status = iota

	// pending entries have no Jpred results yet
	pending

	// ineligible entries are shorter than the minimum length
	ineligible

	// failed entries had Jpred results that couldn't be used
	failed
)

// String returns the name of the status.
func (s status) String() string {
	return []string{"annotated", "not yet predicted", "ineligible", "failed"}[s]
}

// Failure is an entry whose annotation failed.
type Failure struct {
	// Entry is the key of the entry
	Entry string `json:"entry"`

	// Error is why it failed
	Error string `json:"error"`

	err error
}

// Report is the outcome of annotating every entry of a table.
type Report struct {
	// Database is the name of the annotated database
	Database string `json:"database"`

	// Results holds one slot per table row, nil if the row wasn't annotated
	Results []*Result `json:"-"`

	// Annotated are the results of the annotated entries, in row order
	Annotated []*Result `json:"annotated"`

	// Pending are the keys of entries without Jpred results
	Pending []string `json:"pending"`

	// Ineligible are the keys of entries too short to annotate
	Ineligible []string `json:"ineligible"`

	// Failures are the entries whose results couldn't be used
	Failures []Failure `json:"failures"`

	// Seconds is how long the run took
	Seconds float64 `json:"seconds"`
}

// outcome is a single entry's slot in a run
type outcome struct {
	status status
	result *Result
	err    error
}

// Process annotates every entry that has Jpred results, using a pool of
// conf.Threads workers. A failure in one entry does not affect the others.
// Each entry's outcome is written into its own slot so the report keeps
// the table's row order.
func Process(
	ctx context.Context,
	entries []store.Entry,
	results *jpred.Results,
	flags *Flags,
	conf *config.Config,
) (*Report, error) {
	threads := conf.Threads
	if threads < 1 {
		threads = 1
	}

	outcomes := make([]outcome, len(entries))
	jobs := make(chan int, threads*2)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = process(entries[i], results, flags, conf)
			}
		}()
	}

feed:
	for i := range entries {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{Database: flags.database, Results: make([]*Result, len(entries))}
	for i, o := range outcomes {
		key := entries[i].Key
		switch o.status {
		case annotated:
			report.Results[i] = o.result
			report.Annotated = append(report.Annotated, o.result)
		case pending:
			report.Pending = append(report.Pending, key)
		case ineligible:
			report.Ineligible = append(report.Ineligible, key)
		case failed:
			report.Failures = append(report.Failures, Failure{Entry: key, Error: o.err.Error(), err: o.err})
		}
	}
	return report, nil
}

// process annotates a single entry.
func process(e store.Entry, results *jpred.Results, flags *Flags, conf *config.Config) outcome {
	if e.Length < conf.MinLength {
		return outcome{status: ineligible}
	}

	id, path, err := resolve(e, results, flags.crossReference)
	if err != nil {
		var missing *jpred.MissingResultsError
		if errors.As(err, &missing) {
			return outcome{status: pending}
		}
		return outcome{status: failed, err: err}
	}

	prediction, err := jpred.ParseFile(path)
	if err != nil {
		return outcome{status: failed, err: err}
	}

	res, err := Annotate(e, prediction, conf, flags.strand)
	if err != nil {
		return outcome{status: failed, err: err}
	}
	res.ResultEntry = id

	return outcome{status: annotated, result: res}
}

// resolve finds the Jpred results of an entry. With crossReference, the
// results of the first of the entry's identifiers that has any are used.
// Otherwise only the first identifier is looked up.
func resolve(e store.Entry, results *jpred.Results, crossReference bool) (id, path string, err error) {
	ids := e.IDs()
	if len(ids) == 0 {
		return "", "", &segment.PreconditionError{Op: "resolve", Reason: "entry without an identifier"}
	}
	if !crossReference {
		ids = ids[:1]
	}

	for _, id = range ids {
		if path, err = results.Path(id); err == nil {
			return id, path, nil
		}
	}
	return "", "", err
}

// counts returns the number of entries in each state.
func (r *Report) counts() map[status]int {
	return map[status]int{
		annotated:  len(r.Annotated),
		pending:    len(r.Pending),
		ineligible: len(r.Ineligible),
		failed:     len(r.Failures),
	}
}
