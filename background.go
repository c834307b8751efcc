package lottopdf

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/lvillar/lottopdf/layout"
)

// background is the first page of a PDF file, imported once and stamped
// full-bleed under the cards of every page.
type background struct {
	path string
	data []byte
	imp  *gofpdi.Importer
	tpl  int
	w, h float64 // source page size in points
}

// loadBackground reads the template file. Import is deferred until the
// first page exists.
func loadBackground(path string) (*background, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, fmt.Errorf("%s is not a PDF file", path)
	}
	return &background{path: path, data: data, tpl: -1}, nil
}

// stamp draws the template over the whole current page, importing it on
// first use. The importer panics on malformed input; that is reported as an
// error.
func (b *background) stamp(pdf *gofpdf.Fpdf, page layout.Page) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("importing %s: %v", b.path, r)
		}
	}()
	if b.tpl < 0 {
		b.imp = gofpdi.NewImporter()
		var rs io.ReadSeeker = bytes.NewReader(b.data)
		b.tpl = b.imp.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
		if dims, ok := b.imp.GetPageSizes()[1]; ok {
			if mb, ok := dims["/MediaBox"]; ok {
				b.w, b.h = mb["w"], mb["h"]
			}
		}
		if pdf.Err() {
			return fmt.Errorf("importing %s: %w", b.path, pdf.Error())
		}
	}
	b.imp.UseImportedTemplate(pdf, b.tpl, 0, 0, page.Width, page.Height)
	if pdf.Err() {
		return pdf.Error()
	}
	return nil
}

// fits reports whether the imported page has the proportions of page. An
// unknown size fits.
func (b *background) fits(page layout.Page) bool {
	if b.w <= 0 || b.h <= 0 {
		return true
	}
	return math.Abs(b.w/b.h-page.Width/page.Height) < 0.01
}
