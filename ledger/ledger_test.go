package ledger_test

import (
	"bytes"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/lottopdf/card"
	"github.com/lvillar/lottopdf/ledger"
)

func newTestPDF() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPage()
	return pdf
}

func output(t *testing.T, pdf *gofpdf.Fpdf) {
	t.Helper()
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("output does not start with a PDF header")
	}
}

func TestTableHeaderRepeatsOnPageBreak(t *testing.T) {
	pdf := newTestPDF()
	pdf.SetAutoPageBreak(false, 36)

	tb := ledger.New(pdf).SetColumnWidths(60, 0, 60)
	h := tb.AddHeaderRow()
	h.AddCell("ID")
	h.AddCell("Name")
	h.AddCell("Value")
	for i := range 120 {
		r := tb.AddRow()
		r.AddCellf("%d", i+1)
		r.AddCellf("Item %d", i+1)
		r.AddCellf("%.2f", float64(i+1)*1.5)
	}
	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if pdf.PageNo() < 2 {
		t.Errorf("expected a page break, got %d page(s)", pdf.PageNo())
	}
	output(t, pdf)
}

func TestTableColspanAndStyles(t *testing.T) {
	pdf := newTestPDF()
	tb := ledger.New(pdf).
		SetColumnWidths(40, 40, 40, 40).
		SetStyle(ledger.Style{
			CellPadding: ledger.UniformPadding(1),
			HeaderStyle: &ledger.CellStyle{
				FillColor: &ledger.RGBColor{R: 0, G: 51, B: 102},
				TextColor: &ledger.RGBColor{R: 255, G: 255, B: 255},
				Font:      &ledger.FontSpec{Family: "Helvetica", Style: "B", Size: 11},
			},
		})
	h := tb.AddHeaderRow()
	h.AddCell("Spans two").SetColspan(2)
	h.AddCell("C")
	h.AddCell("D")
	r := tb.AddRow()
	r.AddCell("a")
	r.AddCell("b").SetAlign("R")
	r.AddCell("c").SetFillColor(212, 237, 218)
	r.AddCell("d")
	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	output(t, pdf)
}

func TestTablePositionAndWidth(t *testing.T) {
	pdf := newTestPDF()
	font := ledger.FontSpec{Family: "Helvetica", Size: 8}
	// 30 characters at 8 pt need about 109 pt: two lines in a 100 pt
	// column, one line in half the page width.
	tb := ledger.New(pdf).
		SetPosition(50, 100).
		SetWidth(200).
		SetColumnWidths(0, 0).
		SetStyle(ledger.Style{CellPadding: ledger.UniformPadding(2), CellFont: &font, MinRowHeight: 12})
	r := tb.AddRow()
	r.AddCell("abcdefghijabcdefghijabcdefghij")
	r.AddCell("x")
	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if x, y := pdf.GetXY(); x != 50 || y != 128 {
		t.Errorf("cursor after table = (%g, %g), want (50, 128)", x, y)
	}
}

func TestRowHeightUsesCellFont(t *testing.T) {
	pdf := newTestPDF()
	pdf.SetFont("Helvetica", "B", 40)
	font := ledger.FontSpec{Family: "Helvetica", Size: 8}
	tb := ledger.New(pdf).
		SetPosition(50, 100).
		SetColumnWidths(100).
		SetStyle(ledger.Style{CellPadding: ledger.UniformPadding(2), CellFont: &font, MinRowHeight: 12})
	tb.AddRow().AddCell("abcdefghij")
	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	// One 8 pt line: 8*1.5 plus 4 pt of padding.
	if y := pdf.GetY(); y != 116 {
		t.Errorf("row ended at %g, want 116", y)
	}
}

func TestEmptyTable(t *testing.T) {
	pdf := newTestPDF()
	if err := ledger.New(pdf).Render(); err != nil {
		t.Fatalf("render empty table: %v", err)
	}
}

func TestRenderRegistry(t *testing.T) {
	g := card.NewGenerator(card.NewSeededRNG(7))
	var entries []ledger.Entry
	for i := range 60 {
		c, err := g.Generate()
		if err != nil {
			t.Fatal(err)
		}
		entries = append(entries, ledger.Entry{Seq: i + 1, Page: i/4 + 1, Slot: i % 4, Card: c})
	}

	pdf := newTestPDF()
	before := pdf.PageCount()
	if err := ledger.RenderRegistry(pdf, entries, ledger.FontSpec{Family: "Helvetica", Size: 9}); err != nil {
		t.Fatalf("RenderRegistry: %v", err)
	}
	if added := pdf.PageCount() - before; added < 2 {
		t.Errorf("60 entries took %d page(s), expected the sheet to continue", added)
	}
	output(t, pdf)
}

func TestRenderRegistryStopsOnDocumentError(t *testing.T) {
	pdf := newTestPDF()
	pdf.SetFont("no-such-font", "", 10)
	if err := ledger.RenderRegistry(pdf, nil, ledger.FontSpec{Family: "Helvetica", Size: 9}); err == nil {
		t.Fatal("expected the document error to be returned")
	}
}
