package lottopdf

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/lottopdf/card"
	"github.com/lvillar/lottopdf/config"
)

// Page lists the cards printed on one page of a Document.
type Page struct {
	Number int   // 1-based
	Cards  []int // sequence numbers, top to bottom
}

// IssuedCard is a card as printed: its numbers and where it went.
type IssuedCard struct {
	Seq  int // 1-based, increasing across all pages
	Page int // 1-based
	Slot int // 0-based, counted from the top of the page
	Card card.Card
}

// Document is a finished run. The PDF is serialized on first use and the
// same bytes are returned by every later call.
type Document struct {
	ID    uuid.UUID
	Title string
	Font  config.Font // the face the cards were printed in
	Pages []Page
	Cards []IssuedCard

	// ControlPages is the number of control sheet pages following the
	// card pages.
	ControlPages int

	pdf  *gofpdf.Fpdf
	once sync.Once
	data []byte
	err  error
}

// Bytes returns the encoded PDF.
func (d *Document) Bytes() ([]byte, error) {
	d.once.Do(func() {
		var buf bytes.Buffer
		if err := d.pdf.Output(&buf); err != nil {
			d.err = newError("Output", ErrOutput, err)
			return
		}
		d.data = buf.Bytes()
	})
	return d.data, d.err
}

// Output writes the encoded PDF to w.
func (d *Document) Output(w io.Writer) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return newError("Output", ErrOutput, err)
	}
	return nil
}

// OutputFile writes the encoded PDF to the named file.
func (d *Document) OutputFile(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return newError("OutputFile", ErrOutput, err)
	}
	return nil
}

// PageCount returns the total number of pages, control sheet included.
func (d *Document) PageCount() int {
	return len(d.Pages) + d.ControlPages
}
