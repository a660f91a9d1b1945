package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/TWRT/direction-dashboard/internal/datefmt"
	"github.com/go-pdf/fpdf"
)

// Report is a titled document made of metric tables.
type Report struct {
	Title       string
	PeriodLabel string
	GeneratedAt time.Time
	Sections    []Section
}

type Section struct {
	Heading string
	Head    []string
	Rows    [][]string
}

const (
	marginLeft   = 20.0
	marginBottom = 20.0
	rowHeight    = 8.0
	headingGap   = 15.0
	headingSpace = 7.0
	sectionGap   = 20.0
	tableWidth   = 170.0
)

// PDF lays the report out top to bottom, tracking the vertical offset and
// starting a new page when a row would run past the bottom margin.
func PDF(r Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()
	limit := pageHeight - marginBottom

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(marginLeft, 20, tr(r.Title))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginLeft, 35, tr("Period: "+r.PeriodLabel))
	pdf.Text(marginLeft, 45, tr("Generated on: "+datefmt.FormatDate(r.GeneratedAt)))

	y := 60.0
	ensure := func(height float64) {
		if y+height > limit {
			pdf.AddPage()
			y = marginBottom
		}
	}

	for _, s := range r.Sections {
		if s.Heading != "" {
			// keep the heading with the table header row
			ensure(headingGap + rowHeight)
			pdf.SetFont("Helvetica", "B", 16)
			pdf.Text(marginLeft, y, tr(s.Heading))
			y += headingSpace
		}

		cols := len(s.Head)
		if cols == 0 && len(s.Rows) > 0 {
			cols = len(s.Rows[0])
		}
		if cols == 0 {
			continue
		}
		width := tableWidth / float64(cols)

		if len(s.Head) > 0 {
			ensure(rowHeight)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetFillColor(41, 128, 185)
			pdf.SetTextColor(255, 255, 255)
			drawRow(pdf, tr, s.Head, y, width, true)
			pdf.SetTextColor(0, 0, 0)
			y += rowHeight
		}

		pdf.SetFont("Helvetica", "", 11)
		for i, row := range s.Rows {
			ensure(rowHeight)
			fill := i%2 == 1
			if fill {
				pdf.SetFillColor(245, 245, 245)
			}
			drawRow(pdf, tr, row, y, width, fill)
			y += rowHeight
		}
		y += sectionGap
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawRow(pdf *fpdf.Fpdf, tr func(string) string, cells []string, y, width float64, fill bool) {
	pdf.SetXY(marginLeft, y)
	for _, c := range cells {
		pdf.CellFormat(width, rowHeight, tr(c), "1", 0, "L", fill, 0, "")
	}
}
