package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"newsdash/internal/model"
)

// Column widths in millimetres, matching the proportions of the on-screen
// table: author, article title, payout.
var pdfColWidths = [3]float64{50, 100, 30}

const pdfLineHeight = 6

// WritePDF renders the payout table as a PDF document titled
// "Payout Details", one table row per entry.
func WritePDF(w io.Writer, entries []model.PayoutEntry) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payout Details", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Payout Details", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Header row
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(100, 100, 255)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range Header {
		align := "L"
		if i == 2 {
			align = "R"
		}
		pdf.CellFormat(pdfColWidths[i], pdfLineHeight+1, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, r := range Rows(entries) {
		writePDFRow(pdf, r)
	}
	return pdf.Output(w)
}

// writePDFRow draws one bordered row, wrapping the author and title cells
// onto as many lines as they need.
func writePDFRow(pdf *gofpdf.Fpdf, r Row) {
	cells := [3]string{r.AuthorsJoined, r.Title, formatAmount(r.Payout)}

	// Measure the tallest cell to size the row.
	lines := 1
	for i, text := range cells {
		n := len(pdf.SplitText(text, pdfColWidths[i]-2))
		if n > lines {
			lines = n
		}
	}
	height := float64(lines) * pdfLineHeight

	// Page break if the row will not fit.
	_, pageH := pdf.GetPageSize()
	_, _, _, mb := pdf.GetMargins()
	if pdf.GetY()+height > pageH-mb {
		pdf.AddPage()
	}

	x, y := pdf.GetXY()
	for i, text := range cells {
		align := "L"
		if i == 2 {
			align = "R"
		}
		pdf.Rect(x, y, pdfColWidths[i], height, "D")
		pdf.SetXY(x+1, y)
		pdf.MultiCell(pdfColWidths[i]-2, pdfLineHeight, text, "", align, false)
		x += pdfColWidths[i]
		pdf.SetXY(x, y)
	}
	// SetY resets X back to the left margin for the next row.
	pdf.SetY(y + height)
}
