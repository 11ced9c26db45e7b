package label

import "fmt"

// Measurer reports the rendered width in millimeters of text drawn in the
// label font (bold Helvetica) at a given point size. It is the only thing the
// layout needs from the PDF backend, kept as an interface so the layout can
// be tested without one.
type Measurer interface {
	TextWidth(text string, sizePt int) float64
}

// Layout fractions tuned at the 48x25 and 96x25 cell sizes. Changing any of
// them changes the rendered output.
const (
	verticalPaddingFrac = 0.10 // padding from top and bottom edges
	nameBandFrac        = 0.70 // name baseline within the usable band
	dateBandFrac        = 0.25 // date baseline within the usable band
	fitWidthFrac        = 0.90 // fraction of cell width available to text
	borderInsetMM       = 2.0
)

// Text is a positioned run of text. X is the left edge of the run and Y its
// baseline, both in millimeters from the top-left corner of the page.
type Text struct {
	Value  string
	SizePt int
	X, Y   float64
}

// Rect is an unfilled rectangle outline, in millimeters from the top-left
// corner of the page.
type Rect struct {
	X, Y, W, H float64
}

// Cell is the computed layout of one label cell: the (possibly shrunk) name
// run, the date run, and the border outline.
type Cell struct {
	Name   Text
	Date   Text
	Border Rect
}

// Page is the computed layout of a whole label page.
type Page struct {
	Width  float64
	Height float64
	Cells  []Cell
}

// LayoutPage computes the full page layout for the given size. The same name
// and date are placed in every cell; cells differ only by their x-offset.
func LayoutPage(m Measurer, text, dateText string, size Size) (Page, error) {
	if !size.Valid() {
		return Page{}, fmt.Errorf("%w: %d", ErrInvalidSize, int(size))
	}

	width, height := size.PageSize()
	page := Page{Width: width, Height: height}
	for i := 0; i < size.CellCount(); i++ {
		page.Cells = append(page.Cells, layoutCell(m, text, dateText, float64(i)*CellWidth, CellWidth, height))
	}
	return page, nil
}

// layoutCell lays out one cell with its left edge at xOffset.
func layoutCell(m Measurer, text, dateText string, xOffset, w, h float64) Cell {
	padding := h * verticalPaddingFrac
	usable := h - 2*padding

	// Baselines are tuned as distances from the bottom edge; flip them into
	// the top-down coordinates the PDF backend draws in.
	nameY := h - (padding + usable*nameBandFrac)
	dateY := h - (padding + usable*dateBandFrac)

	plan := PlanFonts(w)
	namePt, nameWidth := fitName(m, text, w, plan.NamePt)
	dateWidth := m.TextWidth(dateText, plan.DatePt)

	return Cell{
		Name: Text{
			Value:  text,
			SizePt: namePt,
			X:      xOffset + (w-nameWidth)/2,
			Y:      nameY,
		},
		Date: Text{
			Value:  dateText,
			SizePt: plan.DatePt,
			X:      xOffset + (w-dateWidth)/2,
			Y:      dateY,
		},
		Border: Rect{
			X: xOffset + borderInsetMM,
			Y: borderInsetMM,
			W: w - 2*borderInsetMM,
			H: h - 2*borderInsetMM,
		},
	}
}

// fitName shrinks the name font one point at a time until the text fits
// within the available fraction of the cell width or the floor is reached.
// Text that still overflows at the floor is accepted as-is; it may cross the
// border rather than fail the render. Returns the final size and the
// measured width at that size, which the caller centers on.
func fitName(m Measurer, text string, cellWidth float64, startPt int) (pt int, width float64) {
	available := cellWidth * fitWidthFrac
	pt = startPt
	width = m.TextWidth(text, pt)
	for width > available && pt > shrinkFloorPt {
		pt--
		width = m.TextWidth(text, pt)
	}
	return pt, width
}
