package render

import (
	"fmt"
	"strings"

	"github.com/boombuler/barcode/qr"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/barcode"

	"github.com/lvillar/lottopdf/config"
	"github.com/lvillar/lottopdf/layout"
)

// NewPDF returns an empty gofpdf document measured in points whose pages
// have the given size. Automatic page breaks are off: every element is
// positioned explicitly.
func NewPDF(page layout.Page) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

// PDFSurface draws onto the current page of a gofpdf document. gofpdf measures
// y from the top of the page, so every y coordinate is flipped on the way in.
// It also acts as the font provider for the document.
type PDFSurface struct {
	pdf     *gofpdf.Fpdf
	page    layout.Page
	fontDir string

	face Face
	size float64
}

// NewPDFSurface wraps pdf, whose pages are page sized.
func NewPDFSurface(pdf *gofpdf.Fpdf, page layout.Page) *PDFSurface {
	return &PDFSurface{pdf: pdf, page: page}
}

// SetFontDir makes Embed load TrueType files from dir instead of using the
// built-in PDF core fonts.
func (s *PDFSurface) SetFontDir(dir string) {
	s.fontDir = dir
}

// PDF returns the underlying document.
func (s *PDFSurface) PDF() *gofpdf.Fpdf {
	return s.pdf
}

func (s *PDFSurface) flip(y float64) float64 {
	return s.page.Height - y
}

// SetLineWidth sets the stroke width for following lines and rectangles.
func (s *PDFSurface) SetLineWidth(w float64) {
	s.pdf.SetLineWidth(w)
}

// StrokeRect outlines r.
func (s *PDFSurface) StrokeRect(r layout.Rect) {
	s.pdf.Rect(r.X, s.flip(r.Y+r.H), r.W, r.H, "D")
}

// Line strokes the segment l.
func (s *PDFSurface) Line(l layout.Segment) {
	s.pdf.Line(l.X1, s.flip(l.Y1), l.X2, s.flip(l.Y2))
}

// Text draws text with its baseline starting at (x, y).
func (s *PDFSurface) Text(face Face, size, x, y float64, text string) {
	s.use(face, size)
	s.pdf.Text(x, s.flip(y), text)
}

// StringWidth returns the width of text in points.
func (s *PDFSurface) StringWidth(face Face, text string, size float64) float64 {
	s.use(face, size)
	return s.pdf.GetStringWidth(text)
}

func (s *PDFSurface) use(face Face, size float64) {
	if face == s.face && size == s.size {
		return
	}
	s.pdf.SetFont(face.Family, face.Style, size)
	s.face, s.size = face, size
}

// Err returns the first error recorded by the document, if any.
func (s *PDFSurface) Err() error {
	if s.pdf.Err() {
		return s.pdf.Error()
	}
	return nil
}

// Embed makes f available for drawing. Without a font directory the PDF
// core fonts are used; with one, the TrueType file for the family and style
// is loaded from it (for example TimesNewRoman-Bold.ttf). A failed embed
// leaves the document usable.
func (s *PDFSurface) Embed(f config.Font) (Face, error) {
	if s.fontDir == "" {
		return s.EmbedCore(f)
	}
	if err := s.Err(); err != nil {
		return Face{}, err
	}
	family := "lotto-" + fileStem(f.Family)
	face := Face{Family: family, Style: styleCode(f.Style)}
	s.pdf.SetFontLocation(s.fontDir)
	s.pdf.AddUTF8Font(family, face.Style, fontFile(f))
	s.pdf.SetFont(face.Family, face.Style, 0)
	if err := s.takeError(); err != nil {
		return Face{}, fmt.Errorf("render: embedding %s from %s: %w", f, s.fontDir, err)
	}
	s.face, s.size = Face{}, 0
	return face, nil
}

// EmbedCore makes f available using the PDF core fonts.
func (s *PDFSurface) EmbedCore(f config.Font) (Face, error) {
	if err := s.Err(); err != nil {
		return Face{}, err
	}
	face := Face{Family: coreFamily(f.Family), Style: styleCode(f.Style)}
	s.pdf.SetFont(face.Family, face.Style, 0)
	if err := s.takeError(); err != nil {
		return Face{}, fmt.Errorf("render: embedding %s: %w", f, err)
	}
	s.face, s.size = Face{}, 0
	return face, nil
}

// takeError returns and clears the document error.
func (s *PDFSurface) takeError() error {
	if !s.pdf.Err() {
		return nil
	}
	err := s.pdf.Error()
	s.pdf.ClearError()
	return err
}

// DrawBarcode registers code with gofpdf's barcode support and draws it
// filling r.
func (s *PDFSurface) DrawBarcode(kind config.Barcode, code string, r layout.Rect) error {
	var key string
	switch kind {
	case config.BarcodeQR:
		key = barcode.RegisterQR(s.pdf, code, qr.M, qr.Unicode)
	case config.BarcodeCode128:
		key = barcode.RegisterCode128(s.pdf, code)
	case config.BarcodePDF417:
		key = barcode.RegisterPdf417(s.pdf, code, 4, 2)
	default:
		return fmt.Errorf("render: unsupported barcode kind %q", kind)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("render: registering %s code: %w", kind, err)
	}
	barcode.Barcode(s.pdf, key, r.X, s.flip(r.Y+r.H), r.W, r.H, false)
	return s.Err()
}

func coreFamily(f config.Family) string {
	switch f {
	case config.FamilyArial:
		return "Arial"
	case config.FamilyTimesNewRoman:
		return "Times"
	case config.FamilyCourier:
		return "Courier"
	default:
		return "Helvetica"
	}
}

func styleCode(s config.Style) string {
	switch s {
	case config.StyleBold:
		return "B"
	case config.StyleItalic:
		return "I"
	case config.StyleBoldItalic:
		return "BI"
	default:
		return ""
	}
}

func fileStem(f config.Family) string {
	return strings.ReplaceAll(string(f), " ", "")
}

func fontFile(f config.Font) string {
	suffix := map[config.Style]string{
		config.StyleBold:       "-Bold",
		config.StyleItalic:     "-Italic",
		config.StyleBoldItalic: "-BoldItalic",
	}[f.Style]
	return fileStem(f.Family) + suffix + ".ttf"
}
