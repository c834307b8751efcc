package ledger

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Column describes one table column.
type Column struct {
	Width    float64 // fixed width; 0 shares the remaining space
	MinWidth float64 // lower bound for shared columns
	Align    string  // default alignment: "L", "C" or "R"
}

// Cell is one cell of a row.
type Cell struct {
	text    string
	colspan int
	style   *CellStyle
}

// SetColspan makes the cell span n columns.
func (c *Cell) SetColspan(n int) *Cell {
	if n > 0 {
		c.colspan = n
	}
	return c
}

// SetAlign overrides the column alignment for this cell.
func (c *Cell) SetAlign(align string) *Cell {
	if c.style == nil {
		c.style = &CellStyle{}
	}
	c.style.Align = align
	return c
}

// SetFillColor sets the background of this cell.
func (c *Cell) SetFillColor(r, g, b int) *Cell {
	if c.style == nil {
		c.style = &CellStyle{}
	}
	c.style.FillColor = &RGBColor{r, g, b}
	return c
}

// Row is one table row.
type Row struct {
	cells    []*Cell
	isHeader bool
}

// AddCell appends a text cell.
func (r *Row) AddCell(text string) *Cell {
	c := &Cell{text: text, colspan: 1}
	r.cells = append(r.cells, c)
	return c
}

// AddCellf appends a formatted text cell.
func (r *Row) AddCellf(format string, args ...any) *Cell {
	return r.AddCell(fmt.Sprintf(format, args...))
}

// Table builds a table and draws it into a document.
type Table struct {
	pdf     *gofpdf.Fpdf
	columns []Column
	header  []*Row
	body    []*Row
	style   Style
	x, y    float64
	width   float64
}

// New returns an empty table drawing into pdf.
func New(pdf *gofpdf.Fpdf) *Table {
	return &Table{
		pdf:   pdf,
		style: Style{CellPadding: UniformPadding(2), MinRowHeight: 12},
	}
}

// SetColumns sets the column definitions.
func (t *Table) SetColumns(cols ...Column) *Table {
	t.columns = cols
	return t
}

// SetColumnWidths sets fixed widths; 0 shares the remaining space.
func (t *Table) SetColumnWidths(widths ...float64) *Table {
	t.columns = make([]Column, len(widths))
	for i, w := range widths {
		t.columns[i] = Column{Width: w}
	}
	return t
}

// SetStyle sets the table style.
func (t *Table) SetStyle(s Style) *Table {
	t.style = s
	return t
}

// SetPosition sets the top-left corner of the table. Zero values keep the
// current cursor position.
func (t *Table) SetPosition(x, y float64) *Table {
	t.x, t.y = x, y
	return t
}

// SetWidth sets the total width. The default is the page width minus margins.
func (t *Table) SetWidth(w float64) *Table {
	t.width = w
	return t
}

// AddHeaderRow appends a header row. Header rows are drawn before the body
// and again at the top of every page the body breaks onto.
func (t *Table) AddHeaderRow() *Row {
	r := &Row{isHeader: true}
	t.header = append(t.header, r)
	return r
}

// AddRow appends a body row.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.body = append(t.body, r)
	return r
}

// Render draws the table starting at the configured position, adding pages
// when a row would cross the bottom margin.
func (t *Table) Render() error {
	if t.pdf.Err() {
		return t.pdf.Error()
	}
	widths := t.widths()
	if len(widths) == 0 {
		return nil
	}

	startX := t.x
	if startX == 0 {
		startX = t.pdf.GetX()
	}
	if t.y != 0 {
		t.pdf.SetY(t.y)
	}

	for _, r := range t.header {
		t.renderRow(r, widths, startX, -1)
	}
	_, pageH := t.pdf.GetPageSize()
	_, _, _, bottom := t.pdf.GetMargins()
	for i, r := range t.body {
		if t.pdf.GetY()+t.rowHeight(r, widths, i) > pageH-bottom {
			t.pdf.AddPage()
			t.pdf.SetX(startX)
			for _, h := range t.header {
				t.renderRow(h, widths, startX, -1)
			}
		}
		t.renderRow(r, widths, startX, i)
	}
	return t.pdf.Error()
}

// widths resolves the final column widths.
func (t *Table) widths() []float64 {
	total := t.width
	if total == 0 {
		pageW, _ := t.pdf.GetPageSize()
		left, _, right, _ := t.pdf.GetMargins()
		total = pageW - left - right
	}
	if len(t.columns) == 0 {
		var first *Row
		if len(t.header) > 0 {
			first = t.header[0]
		} else if len(t.body) > 0 {
			first = t.body[0]
		}
		if first == nil {
			return nil
		}
		t.columns = make([]Column, len(first.cells))
	}

	widths := make([]float64, len(t.columns))
	fixed, shared := 0.0, 0
	for i, c := range t.columns {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed += c.Width
		} else {
			shared++
		}
	}
	if shared > 0 {
		each := max(total-fixed, 0) / float64(shared)
		for i, c := range t.columns {
			if c.Width == 0 {
				widths[i] = max(each, c.MinWidth)
			}
		}
	}
	return widths
}

// span returns the width of cell i of a row, including the columns it spans.
func span(widths []float64, i int, c *Cell) float64 {
	w := widths[i]
	for j := 1; j < c.colspan && i+j < len(widths); j++ {
		w += widths[i+j]
	}
	return w
}

// rowHeight measures each cell in the font it will be drawn with.
func (t *Table) rowHeight(r *Row, widths []float64, bodyIdx int) float64 {
	h := t.style.MinRowHeight
	p := t.style.CellPadding
	col := 0
	for _, c := range r.cells {
		if col >= len(widths) {
			break
		}
		w := max(span(widths, col, c)-p.Left-p.Right, 1)
		s := t.resolve(c, r, bodyIdx)
		if s.Font != nil {
			t.pdf.SetFont(s.Font.Family, s.Font.Style, s.Font.Size)
		}
		size := t.fontSize(s)
		lines := t.pdf.SplitLines([]byte(c.text), w)
		h = max(h, float64(len(lines))*size*1.5+p.Top+p.Bottom)
		col += c.colspan
	}
	return h
}

func (t *Table) fontSize(s CellStyle) float64 {
	if s.Font != nil && s.Font.Size > 0 {
		return s.Font.Size
	}
	pt, _ := t.pdf.GetFontSize()
	return pt
}

func (t *Table) renderRow(r *Row, widths []float64, startX float64, bodyIdx int) {
	h := t.rowHeight(r, widths, bodyIdx)
	p := t.style.CellPadding
	y := t.pdf.GetY()
	x := startX

	if b := t.style.Border; b != nil {
		t.pdf.SetDrawColor(b.Color.R, b.Color.G, b.Color.B)
		if b.Width > 0 {
			t.pdf.SetLineWidth(b.Width)
		}
	}

	col := 0
	for _, c := range r.cells {
		if col >= len(widths) {
			break
		}
		w := span(widths, col, c)
		s := t.resolve(c, r, bodyIdx)

		if s.FillColor != nil {
			t.pdf.SetFillColor(s.FillColor.R, s.FillColor.G, s.FillColor.B)
			t.pdf.Rect(x, y, w, h, "F")
		}
		t.pdf.Rect(x, y, w, h, "D")

		if s.TextColor != nil {
			t.pdf.SetTextColor(s.TextColor.R, s.TextColor.G, s.TextColor.B)
		} else {
			t.pdf.SetTextColor(0, 0, 0)
		}
		if s.Font != nil {
			t.pdf.SetFont(s.Font.Family, s.Font.Style, s.Font.Size)
		}
		align := s.Align
		if align == "" && col < len(t.columns) {
			align = t.columns[col].Align
		}
		if align == "" {
			align = "L"
		}

		t.pdf.SetXY(x+p.Left, y+p.Top)
		inner := w - p.Left - p.Right
		if t.pdf.GetStringWidth(c.text) > inner {
			t.pdf.MultiCell(inner, t.fontSize(s)*1.5, c.text, "", align, false)
		} else {
			t.pdf.CellFormat(inner, h-p.Top-p.Bottom, c.text, "", 0, align+"M", false, 0, "")
		}

		x += w
		col += c.colspan
	}

	t.pdf.SetDrawColor(0, 0, 0)
	t.pdf.SetFillColor(0, 0, 0)
	t.pdf.SetTextColor(0, 0, 0)
	t.pdf.SetXY(startX, y+h)
}

// resolve merges table, header, alternate row and cell styles, in that order.
func (t *Table) resolve(c *Cell, r *Row, bodyIdx int) CellStyle {
	var s CellStyle
	s.Font = t.style.CellFont
	if r.isHeader && t.style.HeaderStyle != nil {
		merge(&s, t.style.HeaderStyle)
	}
	if !r.isHeader && bodyIdx >= 0 && t.style.AlternateRows != nil {
		if bodyIdx%2 == 0 {
			merge(&s, &t.style.AlternateRows.Even)
		} else {
			merge(&s, &t.style.AlternateRows.Odd)
		}
	}
	if c.style != nil {
		merge(&s, c.style)
	}
	return s
}
