package annotate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/segment"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/store"
)

// Names of the columns added to the table
const (
	HelixSegmentsColumn   = "Helix fragments (Jpred)"
	HelixScoresColumn     = "Helix score (Jpred)"
	HelixPercentageColumn = "Helix percentage (Jpred)"

	StrandSegmentsColumn   = "Strand fragments (Jpred)"
	StrandScoresColumn     = "Strand score (Jpred)"
	StrandPercentageColumn = "Strand percentage (Jpred)"

	ResultEntryColumn = "Jpred result entry"
)

// column is a named column and how to fill its cell from a Result
type column struct {
	name  string
	value func(*Result) string
}

// AddColumns appends the report's results to the table it was made from.
// Rows that weren't annotated get empty cells.
func (r *Report) AddColumns(t *store.Table, strand, crossReference bool) error {
	if len(r.Results) != len(t.Rows) {
		return fmt.Errorf("report has %d results for %d rows", len(r.Results), len(t.Rows))
	}

	columns := structureColumns(
		HelixSegmentsColumn, HelixScoresColumn, HelixPercentageColumn,
		func(res *Result) *Structure { return &res.Helix },
	)
	if strand {
		columns = append(columns, structureColumns(
			StrandSegmentsColumn, StrandScoresColumn, StrandPercentageColumn,
			func(res *Result) *Structure { return res.Strand },
		)...)
	}
	if crossReference {
		columns = append(columns, column{ResultEntryColumn, func(res *Result) string { return res.ResultEntry }})
	}

	for _, c := range columns {
		values := make([]string, len(r.Results))
		for i, res := range r.Results {
			if res != nil {
				values[i] = c.value(res)
			}
		}
		if err := t.AddColumn(c.name, values); err != nil {
			return err
		}
	}
	return nil
}

// structureColumns returns the segments, scores and percentage columns of
// one structural class.
func structureColumns(segments, scores, percentage string, get func(*Result) *Structure) []column {
	cell := func(format func(*Structure) string) func(*Result) string {
		return func(res *Result) string {
			if s := get(res); s != nil {
				return format(s)
			}
			return ""
		}
	}

	return []column{
		{segments, cell(func(s *Structure) string { return segment.Format(s.Segments) })},
		{scores, cell(func(s *Structure) string { return segment.FormatScores(s.Scores) })},
		{percentage, cell(func(s *Structure) string { return segment.FormatFloat(s.Percentage) })},
	}
}

// writeJSON writes the report to filename.
func (r *Report) writeJSON(filename string) error {
	output, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %v", err)
	}

	if err = os.WriteFile(filename, output, 0644); err != nil {
		return fmt.Errorf("failed to write the report: %v", err)
	}
	return nil
}

// writeSummary logs the number of entries in each state, followed by
// each failed entry and why it failed.
func (r *Report) writeSummary(w io.Writer) {
	counts := r.counts()

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "database\t%s\t\n", r.Database)
	for _, s := range []status{annotated, pending, ineligible, failed} {
		fmt.Fprintf(tw, "%s\t%d\t\n", s, counts[s])
	}
	tw.Flush()

	if len(r.Failures) == 0 {
		return
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "entry\terror\t\n")
	for _, f := range r.Failures {
		fmt.Fprintf(tw, "%s\t%s\t\n", f.Entry, f.Error)
	}
	tw.Flush()
}
