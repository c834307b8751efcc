package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lvillar/lottopdf/card"
	"github.com/lvillar/lottopdf/config"
	"github.com/lvillar/lottopdf/layout"
)

// Renderer draws cards with one configuration and one font face.
type Renderer struct {
	Surface Surface
	Metrics Metrics
	Face    Face
	Config  config.Config
	Clock   Clock

	// CodePrefix is prepended to the sequence number in barcodes.
	CodePrefix string
}

// DrawCard draws c with its bottom-left corner at (x, y): the double frame,
// the cell grid, the numbers, the footer label carrying seq and, when
// configured, a barcode. The card itself is never modified.
func (r *Renderer) DrawCard(c card.Card, x, y float64, seq int) error {
	f := layout.NewFrame(x, y, r.Config)

	r.Surface.SetLineWidth(f.OuterWidth)
	r.Surface.StrokeRect(f.Outer)
	r.Surface.SetLineWidth(f.InnerWidth)
	r.Surface.StrokeRect(f.Inner)

	r.Surface.SetLineWidth(layout.GridLineWidth)
	for _, s := range f.GridLines() {
		r.Surface.Line(s)
	}

	size := r.Config.FontSize
	for row := range card.Rows {
		for col := range card.Columns {
			n := c[row][col]
			if n == card.Empty {
				continue
			}
			text := strconv.Itoa(n)
			cx, cy := f.CellCenter(row, col)
			w := r.Metrics.StringWidth(r.Face, text, size)
			r.Surface.Text(r.Face, size, cx-w/2, layout.Baseline(cy, size), text)
		}
	}

	r.drawFooter(NewFooter(r.Metrics, r.Face, r.Config, x, y, seq, r.now()))

	if r.Config.Barcode != "" && r.Config.Barcode != config.BarcodeNone {
		if err := r.drawBarcode(c, f, seq); err != nil {
			return fmt.Errorf("render: card %d: %w", seq, err)
		}
	}

	if err := r.Surface.Err(); err != nil {
		return fmt.Errorf("render: card %d: %w", seq, err)
	}
	return nil
}

func (r *Renderer) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock()
}

func (r *Renderer) drawFooter(l Footer) {
	r.Surface.Text(r.Face, r.Config.DateTimeFontSize, l.DateTimeX, l.Y, l.DateTime)
	r.Surface.Text(r.Face, r.Config.NumberFontSize, l.NumberX, l.Y, l.Number)
}

// barcodePadding keeps a code clear of the grid lines of its cell.
const barcodePadding = 2

// drawBarcode places the code in the rightmost empty cell of the bottom row.
// Every row has four empty cells, so one is always available.
func (r *Renderer) drawBarcode(c card.Card, f layout.Frame, seq int) error {
	b, ok := r.Surface.(Barcoder)
	if !ok {
		return ErrBarcodeUnsupported
	}
	row := card.Rows - 1
	col := card.Columns - 1
	for col > 0 && c[row][col] != card.Empty {
		col--
	}
	box := BarcodeBox(r.Config.Barcode, r.Config.BarcodeSize, f.Cell(row, col))
	return b.DrawBarcode(r.Config.Barcode, r.barcodeCode(seq), box)
}

func (r *Renderer) barcodeCode(seq int) string {
	if r.CodePrefix == "" {
		return strconv.Itoa(seq)
	}
	return r.CodePrefix + "-" + strconv.Itoa(seq)
}

// BarcodeBox fits a code of the given kind and nominal size into cell,
// centered. QR codes are square, Code 128 is four times wider than tall and
// PDF417 three times.
func BarcodeBox(kind config.Barcode, size float64, cell layout.Rect) layout.Rect {
	maxW := cell.W - 2*barcodePadding
	maxH := cell.H - 2*barcodePadding
	aspect := 1.0
	switch kind {
	case config.BarcodeCode128:
		aspect = 4
	case config.BarcodePDF417:
		aspect = 3
	}
	h := min(size, maxH, maxW/aspect)
	w := h * aspect
	cx, cy := cell.Center()
	return layout.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
