// Package render draws lotto cards onto a page surface.
//
// Drawing goes through the Surface interface so that card geometry can be
// checked without producing a PDF. PDFSurface implements it on top of
// gofpdf; tests use a recording implementation.
//
// Coordinates follow the layout package: points, origin at the bottom-left
// corner of the page, y growing upwards.
package render

import (
	"errors"
	"time"

	"github.com/lvillar/lottopdf/config"
	"github.com/lvillar/lottopdf/layout"
)

// ErrBarcodeUnsupported is returned when a barcode is requested from a
// surface that cannot draw one.
var ErrBarcodeUnsupported = errors.New("render: surface cannot draw barcodes")

// Face identifies a font that has been embedded into a surface.
type Face struct {
	Family string // family key known to the surface
	Style  string // "", "B", "I" or "BI"
}

// Surface receives the drawing commands for one page.
type Surface interface {
	SetLineWidth(w float64)
	StrokeRect(r layout.Rect)
	Line(s layout.Segment)
	// Text draws s with its baseline starting at (x, y).
	Text(face Face, size, x, y float64, s string)
	// Err reports the first error the surface ran into, if any.
	Err() error
}

// Metrics measures text set in an embedded face.
type Metrics interface {
	StringWidth(face Face, text string, size float64) float64
}

// Barcoder is implemented by surfaces that can place machine-readable codes.
// r is the box the code must fill.
type Barcoder interface {
	DrawBarcode(kind config.Barcode, code string, r layout.Rect) error
}

// Clock returns the current time; it is called once per card footer.
type Clock func() time.Time
