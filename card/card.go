// Package card generates Russian Lotto cards.
//
// A card is a grid of 3 rows and 9 columns holding 15 distinct numbers from 1
// to 90. Column c only holds numbers from its fixed range (1-9, 10-19, ...,
// 70-79, 80-90), every column holds one or two numbers and every row holds
// exactly five.
package card

import (
	"errors"
	"fmt"
	"strings"
)

// Grid dimensions and fill counts.
const (
	Rows       = 3
	Columns    = 9
	PerRow     = 5
	TotalCount = Rows * PerRow
)

// Empty marks a cell without a number.
const Empty = 0

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("card: invalid card")

// Range is the closed interval of numbers a column may hold.
type Range struct {
	Min, Max int
}

// Contains reports whether n lies in the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Size is the number of values in the range.
func (r Range) Size() int {
	return r.Max - r.Min + 1
}

// ColumnRanges holds the range for each column. The last column also takes 90.
var ColumnRanges = [Columns]Range{
	{1, 9},
	{10, 19},
	{20, 29},
	{30, 39},
	{40, 49},
	{50, 59},
	{60, 69},
	{70, 79},
	{80, 90},
}

// Card is a lotto grid indexed as [row][column]. Empty cells hold Empty.
type Card [Rows][Columns]int

// Row returns the numbers of row r from left to right.
func (c Card) Row(r int) []int {
	var out []int
	for _, n := range c[r] {
		if n != Empty {
			out = append(out, n)
		}
	}
	return out
}

// Column returns the numbers of column col from top to bottom.
func (c Card) Column(col int) []int {
	var out []int
	for r := range Rows {
		if n := c[r][col]; n != Empty {
			out = append(out, n)
		}
	}
	return out
}

// Numbers returns all numbers of the card in row-major order.
func (c Card) Numbers() []int {
	out := make([]int, 0, TotalCount)
	for r := range Rows {
		out = append(out, c.Row(r)...)
	}
	return out
}

// Filled reports the number of non-empty cells.
func (c Card) Filled() int {
	n := 0
	for r := range Rows {
		for col := range Columns {
			if c[r][col] != Empty {
				n++
			}
		}
	}
	return n
}

// Validate checks every card invariant and reports the first violation.
func (c Card) Validate() error {
	seen := make(map[int]bool, TotalCount)
	for r := range Rows {
		filled := 0
		for col := range Columns {
			n := c[r][col]
			if n == Empty {
				continue
			}
			filled++
			if !ColumnRanges[col].Contains(n) {
				return fmt.Errorf("%w: %d at row %d column %d outside %d-%d",
					ErrInvalid, n, r, col, ColumnRanges[col].Min, ColumnRanges[col].Max)
			}
			if seen[n] {
				return fmt.Errorf("%w: duplicate number %d", ErrInvalid, n)
			}
			seen[n] = true
		}
		if filled != PerRow {
			return fmt.Errorf("%w: row %d has %d numbers, want %d", ErrInvalid, r, filled, PerRow)
		}
	}
	for col := range Columns {
		if k := len(c.Column(col)); k < 1 || k > 2 {
			return fmt.Errorf("%w: column %d has %d numbers, want 1 or 2", ErrInvalid, col, k)
		}
	}
	return nil
}

// String renders the card as three lines of fixed-width cells, "--" for empty.
func (c Card) String() string {
	var b strings.Builder
	for r := range Rows {
		for col := range Columns {
			if col > 0 {
				b.WriteByte(' ')
			}
			if n := c[r][col]; n == Empty {
				b.WriteString("--")
			} else {
				fmt.Fprintf(&b, "%2d", n)
			}
		}
		if r < Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
