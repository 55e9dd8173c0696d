package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"jobsweep/internal/domain"
)

// ExportError is any failure to produce the output file: permission denied,
// disk full, unwritable directory. Always fatal to the run; the attempted
// path rides along so the user sees exactly what could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *ExportError) Unwrap() error { return e.Err }

var baseHeader = []string{"title", "company", "location", "posted_date", "link"}

// WriteCSV writes the listings to path. The header row is always written,
// even for zero listings. Unusable listings (no title and no link) never
// reach the file. withDetails adds the hydration columns.
//
// The write goes to a temp file first and renames into place, under a flock
// on <path>.lock so two runs pointed at the same file cannot interleave.
func WriteCSV(path string, listings []domain.JobListing, withDetails bool) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &ExportError{Path: path, Err: err}
		}
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer lock.Unlock()

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}

	if err := writeRows(f, listings, withDetails); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return &ExportError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return &ExportError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

func writeRows(f *os.File, listings []domain.JobListing, withDetails bool) error {
	w := csv.NewWriter(f)

	header := baseHeader
	if withDetails {
		header = append(append([]string{}, baseHeader...), "applicants", "description_preview")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, j := range listings {
		if !j.Usable() {
			continue
		}
		rec := []string{j.Title, j.Company, j.Location, j.PostedDate, j.Link}
		if withDetails {
			rec = append(rec, j.Applicants, j.DescriptionPreview)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
