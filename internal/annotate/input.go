package annotate

import (
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/config"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/jpred"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/segment"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/store"
)

// Pending returns the entries without Jpred results, in table order.
// Entries shorter than minLength are never annotated so they aren't pending.
func Pending(entries []store.Entry, results *jpred.Results, crossReference bool, minLength int) (pending []store.Entry) {
	for _, e := range entries {
		if e.Length < minLength {
			continue
		}
		if _, _, err := resolve(e, results, crossReference); err != nil {
			pending = append(pending, e)
		}
	}
	return pending
}

// Input writes a Jpred input file for the entries without results and
// returns them. Sequences shorter than conf.PadLength are repeated until
// they are long enough for Jpred. Entries that can't be padded, because
// they have no sequence, are left out and returned as skipped. The input
// file is not written if there's nothing to predict.
func Input(
	entries []store.Entry,
	results *jpred.Results,
	path string,
	crossReference bool,
	conf *config.Config,
) (written, skipped []store.Entry, err error) {
	queries := []jpred.Query{}
	for _, e := range Pending(entries, results, crossReference, conf.MinLength) {
		seq, err := segment.Pad(e.Seq, conf.PadLength)
		if err != nil {
			skipped = append(skipped, e)
			continue
		}

		queries = append(queries, jpred.Query{ID: e.ID(), Seq: seq})
		written = append(written, e)
	}

	if len(queries) == 0 {
		return nil, skipped, nil
	}
	if err = jpred.CreateInput(path, queries); err != nil {
		return nil, nil, err
	}
	return written, skipped, nil
}
