package ledger

import (
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/lottopdf/card"
)

// Entry is one issued card as listed on the control sheet.
type Entry struct {
	Seq  int
	Page int
	Slot int
	Card card.Card
}

// Registry page geometry, in points.
const (
	registryMargin   = 36
	registryTitleGap = 8
)

var (
	headerFill = RGBColor{R: 225, G: 225, B: 225}
	evenFill   = RGBColor{R: 246, G: 246, B: 246}
	oddFill    = RGBColor{R: 255, G: 255, B: 255}
)

// RenderRegistry appends the control sheet to pdf: a titled table with one
// line per entry giving its sequence number, page, slot and the numbers of
// each of its three rows. The sheet starts on a new page and continues onto
// as many pages as needed. font must already be embedded.
func RenderRegistry(pdf *gofpdf.Fpdf, entries []Entry, font FontSpec) error {
	if pdf.Err() {
		return pdf.Error()
	}
	pdf.SetMargins(registryMargin, registryMargin, registryMargin)
	pdf.SetAutoPageBreak(false, registryMargin)
	pdf.AddPage()

	title := font
	title.Size = font.Size + 6
	pdf.SetFont(title.Family, title.Style, title.Size)
	pdf.CellFormat(0, title.Size*1.2, "Card registry", "", 1, "L", false, 0, "")
	pdf.SetFont(font.Family, font.Style, font.Size)
	pdf.CellFormat(0, font.Size*1.5, summary(entries), "", 1, "L", false, 0, "")
	pdf.SetY(pdf.GetY() + registryTitleGap)

	bold := font
	bold.Style = boldStyle(font.Style)
	pageW, _ := pdf.GetPageSize()
	t := New(pdf).
		SetPosition(registryMargin, pdf.GetY()).
		SetWidth(pageW-2*registryMargin).
		SetColumns(
			Column{Width: 40, Align: "R"},
			Column{Width: 36, Align: "C"},
			Column{Width: 36, Align: "C"},
			Column{Align: "C"},
			Column{Align: "C"},
			Column{Align: "C"},
		).
		SetStyle(Style{
			Border:       &BorderStyle{Width: 0.3, Color: RGBColor{R: 150, G: 150, B: 150}},
			CellPadding:  UniformPadding(2),
			CellFont:     &font,
			MinRowHeight: font.Size * 1.6,
			HeaderStyle:  &CellStyle{FillColor: &headerFill, Font: &bold, Align: "C"},
			AlternateRows: &AlternateStyle{
				Even: CellStyle{FillColor: &evenFill},
				Odd:  CellStyle{FillColor: &oddFill},
			},
		})

	h := t.AddHeaderRow()
	h.AddCell("No.")
	h.AddCell("Page")
	h.AddCell("Slot")
	h.AddCell("Numbers").SetColspan(3)
	h2 := t.AddHeaderRow()
	h2.AddCell("")
	h2.AddCell("")
	h2.AddCell("")
	h2.AddCell("Top")
	h2.AddCell("Middle")
	h2.AddCell("Bottom")

	for _, e := range entries {
		r := t.AddRow()
		r.AddCell(strconv.Itoa(e.Seq))
		r.AddCell(strconv.Itoa(e.Page))
		r.AddCell(strconv.Itoa(e.Slot + 1))
		for row := range card.Rows {
			r.AddCell(joinInts(e.Card.Row(row)))
		}
	}
	return t.Render()
}

func summary(entries []Entry) string {
	if len(entries) == 0 {
		return "No cards issued."
	}
	pages := map[int]bool{}
	for _, e := range entries {
		pages[e.Page] = true
	}
	return strconv.Itoa(len(entries)) + " cards on " + strconv.Itoa(len(pages)) + " pages, numbered " +
		strconv.Itoa(entries[0].Seq) + " to " + strconv.Itoa(entries[len(entries)-1].Seq) + "."
}

func boldStyle(s string) string {
	if strings.Contains(s, "I") {
		return "BI"
	}
	return "B"
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "  ")
}
