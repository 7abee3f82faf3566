package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/eubelhor/house-scraper/app/member"
)

// Column order of the CSV output.
var csvHeader = []string{"name", "state", "district", "party", "office_address", "source"}

// ExportError is a filesystem write failure. Unlike per-record fetch and
// parse problems it is fatal to the run.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Run writes the record set to path. The file is written to a temporary
// sibling first and renamed into place, so a failed run never leaves a
// partial output file behind.
func (e *CSVExporter) Run(members []member.Member, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := e.Write(tmp, members); err != nil {
		tmp.Close()
		return &ExportError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	slog.Info("CSV export written", "path", path, "records", len(members))
	return nil
}

// Write streams the CSV document to w. Used both for file export and for
// the serve mode's CSV endpoint.
func (e *CSVExporter) Write(w io.Writer, members []member.Member) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, m := range members {
		record := []string{m.Name, m.State, m.District, m.Party, m.OfficeAddress, m.Source}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %s: %w", m.SeatKey(), err)
		}
	}

	writer.Flush()
	return writer.Error()
}
