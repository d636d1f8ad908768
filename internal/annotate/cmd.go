package annotate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/config"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/jpred"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/segment"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/store"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Flags contains parsed cobra Flags like "in", "out", "database", etc that are used by multiple commands.
type Flags struct {
	// the path of the table with the entries
	in string

	// the path to write the annotated table to
	out string

	// the name of the database, used to find its Jpred files
	database string

	// the path to write a JSON report to (optional)
	report string

	// whether to find results by any identifier in the entry's key
	crossReference bool

	// whether to annotate strands as well as helices
	strand bool
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out, database, report string, crossReference, strand bool) *Flags {
	if database == "" {
		database = databaseName(in)
	}

	return &Flags{
		in:             in,
		out:            out,
		database:       database,
		report:         report,
		crossReference: crossReference,
		strand:         strand,
	}
}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd object
// returns Flags and a Config struct for annotate.Database or annotate.Prepare.
func parseCmdFlags(cmd *cobra.Command) (*Flags, *config.Config) {
	var err error
	fs := &Flags{}

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("\nno input table passed.")
	}

	if fs.database, _ = cmd.Flags().GetString("database"); fs.database == "" {
		fs.database = databaseName(fs.in)
	}

	if fs.out, _ = cmd.Flags().GetString("out"); fs.out == "" {
		fs.out = guessOutput(fs.in)
	}

	// flags below are only on some commands
	fs.report, _ = cmd.Flags().GetString("report")
	fs.crossReference, _ = cmd.Flags().GetBool("cross-reference")
	fs.strand, _ = cmd.Flags().GetBool("strand")

	c, err := config.New()
	if err != nil {
		stderr.Fatal(err)
	}
	return fs, c
}

// databaseName is the input file's name without its extension:
// "Jpred/DBAASP.xlsx" is the DBAASP database.
func databaseName(in string) string {
	name := filepath.Base(in)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// guessOutput returns an output path next to the input: "DBAASP.xlsx" is
// written to "DBAASP.jpred.xlsx". FASTA inputs are written as CSV.
func guessOutput(in string) string {
	ext := filepath.Ext(in)
	out := strings.TrimSuffix(in, ext) + ".jpred"

	switch strings.ToLower(ext) {
	case ".xlsx", ".csv", ".tsv":
		return out + ext
	default:
		return out + ".csv"
	}
}

// ProcessCmd takes a cobra command (with its flags) and runs Database.
func ProcessCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd)

	if _, err := Database(cmd.Context(), flags, conf, os.Stdout); err != nil {
		stderr.Fatalln(err)
	}
}

// Database adds Jpred segment columns to every entry of a table that has
// Jpred results, and writes the table to flags.out.
func Database(ctx context.Context, flags *Flags, conf *config.Config, w io.Writer) (*Report, error) {
	start := time.Now()

	table, entries, results, err := load(flags, conf)
	if err != nil {
		return nil, err
	}

	report, err := Process(ctx, entries, results, flags, conf)
	if err != nil {
		return nil, err
	}
	report.Seconds = time.Since(start).Seconds()

	if err = report.AddColumns(table, flags.strand, flags.crossReference); err != nil {
		return nil, err
	}
	if err = store.Write(flags.out, table); err != nil {
		return nil, err
	}

	if flags.report != "" {
		if err = report.writeJSON(flags.report); err != nil {
			return nil, err
		}
	}

	report.writeSummary(w)
	return report, nil
}

// InputCmd takes a cobra command (with its flags) and runs Prepare.
func InputCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd)

	if _, err := Prepare(flags, conf, os.Stdout); err != nil {
		stderr.Fatalln(err)
	}
}

// Prepare writes the Jpred input file for the entries of a table that
// don't have Jpred results yet, and returns how many there were.
func Prepare(flags *Flags, conf *config.Config, w io.Writer) (int, error) {
	_, entries, results, err := load(flags, conf)
	if err != nil {
		return 0, err
	}

	loc := locator(flags, conf)
	pending, skipped, err := Input(entries, results, loc.InputPath(), flags.crossReference, conf)
	if err != nil {
		return 0, err
	}
	for _, e := range skipped {
		fmt.Fprintf(w, "Skipped %s, it has no sequence\n", e.Key)
	}

	if len(pending) == 0 {
		fmt.Fprintf(w, "No new sequences to run Jpred in %s database\n", flags.database)
		return 0, nil
	}

	fmt.Fprintf(w, "%d New sequences to run Jpred, out of %d in %s database\n", len(pending), len(entries), flags.database)
	fmt.Fprintf(w, "Jpred input written to %s\n", loc.InputPath())
	return len(pending), nil
}

// load reads the entries of the input table and finds their Jpred results.
func load(flags *Flags, conf *config.Config) (*store.Table, []store.Entry, *jpred.Results, error) {
	table, err := store.Read(flags.in)
	if err != nil {
		return nil, nil, nil, err
	}

	entries, err := table.Entries(conf.Key, conf.Sequence, conf.Length)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read entries from %s: %v", flags.in, err)
	}

	results, err := locator(flags, conf).Results()
	var missing *jpred.MissingResultsError
	if errors.As(err, &missing) {
		stderr.Printf("warning: %v, no entries have been predicted", err)
	} else if err != nil {
		return nil, nil, nil, err
	}

	return table, entries, results, nil
}

func locator(flags *Flags, conf *config.Config) jpred.Locator {
	return jpred.Locator{Root: conf.Root, Database: flags.database, Job: conf.Job}
}

// SegmentsCmd logs the segments in a single Jpred results file.
func SegmentsCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno Jpred results file passed.")
	}

	length, _ := cmd.Flags().GetInt("length")
	strand, _ := cmd.Flags().GetBool("strand")

	conf, err := config.New()
	if err != nil {
		stderr.Fatal(err)
	}

	if err := Segments(args[0], length, strand, conf, os.Stdout); err != nil {
		stderr.Fatalln(err)
	}
}

// Segments annotates a single Jpred results file and writes its segments
// as a table. length is the length of the original sequence, the whole
// prediction is used if it's zero.
func Segments(path string, length int, strand bool, conf *config.Config, w io.Writer) error {
	prediction, err := jpred.ParseFile(path)
	if err != nil {
		return err
	}

	id, ok := jpred.ResultID(filepath.Base(path))
	if !ok {
		id = filepath.Base(path)
	}
	if length < 1 {
		length = len(prediction.Labels)
	}

	res, err := Annotate(store.Entry{Key: id, Length: length}, prediction, conf, strand)
	if err != nil {
		return err
	}

	type class struct {
		name string
		s    *Structure
	}
	structures := []class{{"helix", &res.Helix}}
	if res.Strand != nil {
		structures = append(structures, class{"strand", res.Strand})
	}

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "entry\tclass\tstart\tend\tscore\t\n")
	for _, st := range structures {
		for i, seg := range st.s.Segments {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t\n", id, st.name, seg.Start, seg.End, segment.FormatFloat(st.s.Scores[i]))
		}
	}
	tw.Flush()

	for _, st := range structures {
		fmt.Fprintf(w, "%s percentage: %s\n", st.name, segment.FormatFloat(st.s.Percentage))
	}
	return nil
}
