// Package layout computes where cards, frames, grid lines and cells go on a
// page.
//
// All coordinates are PDF user space in points: the origin is the bottom-left
// corner of the page and y grows upwards. Cards are stacked in a single
// centered column from the top of the page down.
package layout

import (
	"math"

	"github.com/lvillar/lottopdf/card"
	"github.com/lvillar/lottopdf/config"
)

// Page is the size of a page in points.
type Page struct {
	Width, Height float64
}

// A4 is the fixed page size of every generated document.
var A4 = Page{Width: 595, Height: 842}

// GridLineWidth is the stroke width of the cell separators. It does not
// depend on the configured border widths.
const GridLineWidth = 0.5

// CardsPerPage returns how many cards fit on one page: the page height
// divided by the card pitch (card height plus vertical spacing), truncated.
// A non-positive pitch yields 0.
func CardsPerPage(p Page, c config.Config) int {
	pitch := c.CardHeight + c.VerticalSpacing
	if pitch <= 0 {
		return 0
	}
	return int(math.Floor(p.Height / pitch))
}

// CardPosition returns the bottom-left corner of the card in the given slot,
// counting slots from 0 at the top of the page.
func CardPosition(p Page, slot int, c config.Config) (x, y float64) {
	x = (p.Width - c.CardWidth) / 2
	y = p.Height - float64(slot+1)*(c.CardHeight+c.VerticalSpacing)
	return x, y
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Segment is a straight line from (X1, Y1) to (X2, Y2).
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Frame is the geometry of one card: the double border and the cell grid.
type Frame struct {
	Card       Rect
	Outer      Rect
	OuterWidth float64
	Inner      Rect
	InnerWidth float64
	CellWidth  float64
	CellHeight float64
}

// NewFrame lays out a card whose bottom-left corner is at (x, y). The outer
// border follows the card bounds; the inner border is inset by the border
// spacing plus half the outer stroke on every side.
func NewFrame(x, y float64, c config.Config) Frame {
	bounds := Rect{X: x, Y: y, W: c.CardWidth, H: c.CardHeight}
	inset := c.BorderSpacing + c.OuterBorder/2
	return Frame{
		Card:       bounds,
		Outer:      bounds,
		OuterWidth: c.OuterBorder,
		Inner: Rect{
			X: x + inset,
			Y: y + inset,
			W: c.CardWidth - 2*inset,
			H: c.CardHeight - 2*inset,
		},
		InnerWidth: c.InnerBorder,
		CellWidth:  c.CardWidth / card.Columns,
		CellHeight: c.CardHeight / card.Rows,
	}
}

// Cell returns the rectangle of the cell at row and col, row 0 being the top row.
func (f Frame) Cell(row, col int) Rect {
	return Rect{
		X: f.Card.X + float64(col)*f.CellWidth,
		Y: f.Card.Y + f.Card.H - float64(row+1)*f.CellHeight,
		W: f.CellWidth,
		H: f.CellHeight,
	}
}

// CellCenter returns the midpoint of the cell at row and col.
func (f Frame) CellCenter(row, col int) (x, y float64) {
	return f.Cell(row, col).Center()
}

// GridLines returns the interior separators: the vertical lines between
// columns followed by the horizontal lines between rows.
func (f Frame) GridLines() []Segment {
	lines := make([]Segment, 0, card.Columns-1+card.Rows-1)
	top := f.Card.Y + f.Card.H
	for col := 1; col < card.Columns; col++ {
		x := f.Card.X + float64(col)*f.CellWidth
		lines = append(lines, Segment{X1: x, Y1: f.Card.Y, X2: x, Y2: top})
	}
	right := f.Card.X + f.Card.W
	for row := 1; row < card.Rows; row++ {
		y := top - float64(row)*f.CellHeight
		lines = append(lines, Segment{X1: f.Card.X, Y1: y, X2: right, Y2: y})
	}
	return lines
}
