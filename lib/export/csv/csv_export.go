package csvexport

import (
	"bytes"
	"encoding/csv"

	"github.com/pkg/errors"
)

// Write renders one header row followed by data rows.
func Write(headers []string, rows [][]string) ([]byte, error) {
	buf := bytes.Buffer{}
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, errors.Wrap(err, "csv header write failed")
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, errors.Wrap(err, "csv rows write failed")
	}
	return buf.Bytes(), nil
}

// Section is a titled block of a combined export.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// WriteSections renders each section as a title row and a header followed by its rows.
// Sections are separated by an empty line.
func WriteSections(sections []Section) ([]byte, error) {
	buf := bytes.Buffer{}
	w := csv.NewWriter(&buf)
	for idx, section := range sections {
		if idx > 0 {
			if err := w.Write([]string{}); err != nil {
				return nil, errors.Wrap(err, "csv separator write failed")
			}
		}
		if err := w.Write([]string{section.Title}); err != nil {
			return nil, errors.Wrap(err, "csv title write failed")
		}
		if err := w.Write(section.Headers); err != nil {
			return nil, errors.Wrap(err, "csv header write failed")
		}
		for _, row := range section.Rows {
			if err := w.Write(row); err != nil {
				return nil, errors.Wrap(err, "csv row write failed")
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "csv flush failed")
	}
	return buf.Bytes(), nil
}
