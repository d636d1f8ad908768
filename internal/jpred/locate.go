package jpred

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// KeywordsJob is the job type whose results are nested in an "_output" directory
	KeywordsJob = "Uniprot_keywords"

	resultDirSuffix  = ".txt_dir"
	outputDir        = "_output"
	resultFileSuffix = ".jnet"
	inputFilePrefix  = "Jpred_input_"
)

// MissingResultsError is returned when there are no Jpred results for
// an entry, or for a whole database. The entry has not been predicted yet.
type MissingResultsError struct {
	// ID is the entry without results, empty if the whole directory is missing
	ID string

	// Dir is the results directory that was searched
	Dir string
}

func (e *MissingResultsError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("no Jpred results directory at %s", e.Dir)
	}
	return fmt.Sprintf("no Jpred results for %s in %s", e.ID, e.Dir)
}

// Locator maps a database name to its Jpred input file and results.
type Locator struct {
	// Root is the directory with Jpred inputs and results
	Root string

	// Database is the name of the database
	Database string

	// Job is the type of job the results were made for
	Job string
}

// Dir returns the directory holding the database's Jpred results.
func (l Locator) Dir() string {
	dir := filepath.Join(l.Root, l.Database+resultDirSuffix)
	if l.Job == KeywordsJob {
		dir = filepath.Join(dir, outputDir)
	}
	return dir
}

// InputPath returns the path of the database's Jpred input file.
func (l Locator) InputPath() string {
	return filepath.Join(l.Root, inputFilePrefix+l.Database+".txt")
}

// Results is a map from entry identifier to the path of its Jpred results.
type Results struct {
	dir   string
	paths map[string]string
}

// Results lists the Jpred results files in the results directory.
// A missing directory returns empty Results and a MissingResultsError.
func (l Locator) Results() (*Results, error) {
	dir := l.Dir()
	res := &Results{dir: dir, paths: make(map[string]string)}

	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return res, &MissingResultsError{Dir: dir}
	} else if err != nil {
		return res, fmt.Errorf("failed to read Jpred results directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if id, ok := ResultID(file.Name()); ok {
			res.paths[id] = filepath.Join(dir, file.Name())
		}
	}
	return res, nil
}

// ResultID returns the entry identifier encoded in a results file name.
// The name is the identifier plus one character, an underscore, and
// anything ending in .jnet: P01501A_1.jnet is the result for P01501.
func ResultID(filename string) (string, bool) {
	if !strings.Contains(filename, resultFileSuffix) {
		return "", false
	}

	entry := strings.SplitN(filename, "_", 2)[0]
	if len(entry) < 2 {
		return "", false
	}
	return entry[:len(entry)-1], true
}

// Path returns the path to the results file of id.
func (r *Results) Path(id string) (string, error) {
	if path, ok := r.paths[id]; ok {
		return path, nil
	}
	return "", &MissingResultsError{ID: id, Dir: r.dir}
}
