// Package label renders a product name and date into a fixed-size printable
// PDF label. Layout (font scaling, shrink-to-fit, centering) is computed
// separately from drawing so it can be tested without a PDF backend.
package label

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// The label font is a PDF core font, so the output never depends on an
// external font file.
const (
	fontFamily = "Helvetica"
	fontStyle  = "B"
)

// dateLayout is the DD/MM/YYYY format stamped on every label.
const dateLayout = "02/01/2006"

// pdfMeasurer measures text through the document that will draw it, so
// layout and rendering agree on metrics exactly.
type pdfMeasurer struct {
	pdf *fpdf.Fpdf
}

func (m pdfMeasurer) TextWidth(text string, sizePt int) float64 {
	m.pdf.SetFont(fontFamily, fontStyle, float64(sizePt))
	return m.pdf.GetStringWidth(text)
}

// Render produces a finished PDF page for the given product name, date text
// and label size. An empty dateText is replaced with today's date in
// DD/MM/YYYY. An empty text renders as a blank name region, not an error.
// Render keeps no state between calls; concurrent calls are independent.
func Render(text, dateText string, size Size) ([]byte, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, int(size))
	}
	if dateText == "" {
		dateText = time.Now().Format(dateLayout)
	}

	width, height := size.PageSize()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetAutoPageBreak(false, 0)

	// Pin document metadata so identical inputs give identical bytes.
	stamp := metadataStamp(dateText)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)

	pdf.AddPage()

	page, err := LayoutPage(pdfMeasurer{pdf}, text, dateText, size)
	if err != nil {
		return nil, err
	}
	for _, cell := range page.Cells {
		drawCell(pdf, cell)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render label PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCell draws one laid-out cell onto the current page.
func drawCell(pdf *fpdf.Fpdf, cell Cell) {
	pdf.SetFont(fontFamily, fontStyle, float64(cell.Name.SizePt))
	pdf.Text(cell.Name.X, cell.Name.Y, cell.Name.Value)

	pdf.SetFont(fontFamily, fontStyle, float64(cell.Date.SizePt))
	pdf.Text(cell.Date.X, cell.Date.Y, cell.Date.Value)

	pdf.Rect(cell.Border.X, cell.Border.Y, cell.Border.W, cell.Border.H, "D")
}

// metadataStamp derives the fixed metadata timestamp from the label date so
// that rendering the same inputs twice produces the same bytes.
func metadataStamp(dateText string) time.Time {
	if t, err := time.Parse(dateLayout, dateText); err == nil {
		return t.UTC()
	}
	return time.Unix(0, 0).UTC()
}
