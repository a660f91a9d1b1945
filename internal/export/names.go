package export

import (
	"time"

	"github.com/TWRT/direction-dashboard/internal/datefmt"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// WorkbookName is <prefix>_<YYYY-MM-DD>.xlsx.
func WorkbookName(prefix string, day time.Time) string {
	return prefix + "_" + datefmt.ISODate(day) + ".xlsx"
}

// ReportName is Report_<category>_<YYYY-MM-DD>.pdf.
func ReportName(category string, day time.Time) string {
	return "Report_" + category + "_" + datefmt.ISODate(day) + ".pdf"
}
