package label

import (
	"errors"
	"fmt"
)

// Physical label geometry in millimeters.
const (
	// CellWidth is the width of a single label cell.
	CellWidth = 48.0
	// CellHeight is the height of every label cell.
	CellHeight = 25.0

	// baseCellWidth is the reference width the font sizes were tuned at.
	// Font sizes scale linearly with cellWidth/baseCellWidth.
	baseCellWidth = 48.0
)

// Font sizing in points.
const (
	nameBaseFontPt = 16
	nameMinFontPt  = 12
	dateBaseFontPt = 12
	dateMinFontPt  = 8

	// shrinkFloorPt is the hard lower bound for the fit-to-width loop.
	shrinkFloorPt = 8
)

// ErrInvalidSize is returned when a size token or Size value is not one of
// the two supported label formats.
var ErrInvalidSize = errors.New("invalid label size")

// Size selects one of the two supported label formats.
type Size int

const (
	// SizeSingle is one 48x25mm label.
	SizeSingle Size = iota + 1
	// SizeDouble is two identical 48x25mm labels side by side on a 96x25mm page.
	SizeDouble
)

// sizeTokens maps the user-facing size strings to Size values.
var sizeTokens = map[string]Size{
	"48x25mm": SizeSingle,
	"96x25mm": SizeDouble,
}

// ParseSize converts a size token ("48x25mm" or "96x25mm") to a Size.
func ParseSize(token string) (Size, error) {
	if size, ok := sizeTokens[token]; ok {
		return size, nil
	}
	return 0, fmt.Errorf("%w: %q (supported sizes: 48x25mm, 96x25mm)", ErrInvalidSize, token)
}

// String returns the size token for s, or "unknown" if s is not valid.
func (s Size) String() string {
	switch s {
	case SizeSingle:
		return "48x25mm"
	case SizeDouble:
		return "96x25mm"
	}
	return "unknown"
}

// Valid reports whether s is one of the supported sizes.
func (s Size) Valid() bool {
	return s == SizeSingle || s == SizeDouble
}

// CellCount returns how many identical cells a page of this size contains.
func (s Size) CellCount() int {
	if s == SizeDouble {
		return 2
	}
	return 1
}

// PageSize returns the page dimensions in millimeters.
func (s Size) PageSize() (width, height float64) {
	return CellWidth * float64(s.CellCount()), CellHeight
}

// FontPlan holds the point sizes derived from cell geometry, before any
// shrink-to-fit adjustment of the name size.
type FontPlan struct {
	NamePt int
	DatePt int
}

// PlanFonts derives font sizes from the cell width. Sizes grow linearly with
// the width relative to the 48mm reference and are clamped to minimums so
// narrow cells stay legible.
func PlanFonts(cellWidth float64) FontPlan {
	scale := cellWidth / baseCellWidth
	return FontPlan{
		NamePt: max(nameMinFontPt, int(nameBaseFontPt*scale)),
		DatePt: max(dateMinFontPt, int(dateBaseFontPt*scale)),
	}
}
