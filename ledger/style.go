// Package ledger renders tabular pages into a card document, most notably the
// control sheet listing every issued card with its numbers.
//
// Table is a small builder over gofpdf with fixed or auto-width columns,
// header rows repeated after each page break, alternating row fills and
// column spans. RenderRegistry uses it to write the control sheet.
package ledger

// RGBColor is an RGB color value.
type RGBColor struct {
	R, G, B int
}

// FontSpec selects a font already known to the document.
type FontSpec struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}

// Padding is the spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding returns a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// BorderStyle is the appearance of cell borders.
type BorderStyle struct {
	Width float64
	Color RGBColor
}

// CellStyle is the appearance of a cell. Nil fields inherit.
type CellStyle struct {
	FillColor *RGBColor
	TextColor *RGBColor
	Font      *FontSpec
	Align     string // "L", "C" or "R"
}

// AlternateStyle alternates body row styles.
type AlternateStyle struct {
	Even CellStyle
	Odd  CellStyle
}

// Style is the overall appearance of a table.
type Style struct {
	Border        *BorderStyle
	AlternateRows *AlternateStyle
	HeaderStyle   *CellStyle
	CellPadding   Padding
	CellFont      *FontSpec
	MinRowHeight  float64
}

// merge copies the set fields of src over dst.
func merge(dst *CellStyle, src *CellStyle) {
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
}
