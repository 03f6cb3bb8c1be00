package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const ReportTitle = "Attachment Testimony Report"

// Entry is one testimony block of the report.
type Entry struct {
	Heading string
	Lines   []string
	Notes   string
}

// GenerateReport lays out a titled report with one block per entry.
// Core fonts are used, so text is translated to cp1252 before writing.
func GenerateReport(generatedAt string, entries []Entry) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(ReportTitle, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, ReportTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Generated %s, %d testimonies", generatedAt, len(entries))), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	if len(entries) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, "No testimonies have been submitted yet.", "", "L", false)
	}
	for _, entry := range entries {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, tr(entry.Heading), "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range entry.Lines {
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
		}
		if notes := strings.TrimSpace(entry.Notes); notes != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, tr(notes), "", "L", false)
		}
		pdf.Ln(4)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
