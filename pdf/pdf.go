package pdf

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// courier metrics, font points to inches
const ptToHeight = 100

const (
	pageH   = 11.0
	margin  = 0.5
	titlePt = 16.0
	bodyPt  = 10.0
)

// WriteTabFile typesets rendered tab text onto Letter pages. Tabs line up
// on column position, so everything is set in courier, one text row per
// tab line, with a page break when the column runs out.
func WriteTabFile(title, tabText, path string) error {
	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	lineH := 1.5 * bodyPt / ptToHeight

	pdf.SetFont("courier", "B", titlePt)
	y := margin + titlePt/ptToHeight
	pdf.Text(margin, y, title)
	y += 2 * lineH

	pdf.SetFont("courier", "", bodyPt)
	for _, line := range strings.Split(tabText, "\n") {
		if y > pageH-margin {
			pdf.AddPage()
			y = margin + lineH
		}
		pdf.Text(margin, y, line)
		y += lineH
	}
	return pdf.OutputFileAndClose(path)
}
