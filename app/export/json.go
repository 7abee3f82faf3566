package export

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/eubelhor/house-scraper/app/member"
)

type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Run writes the record set as indented JSON, with the same
// write-then-rename discipline as the CSV exporter.
func (e *JSONExporter) Run(members []member.Member, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	data, err := json.MarshalIndent(members, "", "  ")
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &ExportError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	slog.Info("JSON export written", "path", path, "records", len(members))
	return nil
}
