package card_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lvillar/lottopdf/card"
)

// constantRNG always returns the same value, modulo n.
type constantRNG int

func (c constantRNG) Intn(n int) int { return int(c) % n }

func TestGeneratedCardsHoldInvariants(t *testing.T) {
	g := card.NewGenerator(card.NewSeededRNG(42))
	for i := range 500 {
		c, err := g.Generate()
		if err != nil {
			t.Fatalf("card %d: %v", i, err)
		}
		if c.Filled() != card.TotalCount {
			t.Fatalf("card %d has %d numbers:\n%s", i, c.Filled(), c)
		}
		seen := map[int]bool{}
		for r := range card.Rows {
			if got := len(c.Row(r)); got != card.PerRow {
				t.Fatalf("card %d row %d has %d numbers", i, r, got)
			}
		}
		for col, rng := range card.ColumnRanges {
			nums := c.Column(col)
			if len(nums) < 1 || len(nums) > 2 {
				t.Fatalf("card %d column %d has %d numbers", i, col, len(nums))
			}
			for _, n := range nums {
				if !rng.Contains(n) {
					t.Fatalf("card %d: %d not in column %d range", i, n, col)
				}
				if seen[n] {
					t.Fatalf("card %d: duplicate %d", i, n)
				}
				seen[n] = true
			}
		}
	}
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	a := card.NewGenerator(card.NewSeededRNG(7))
	b := card.NewGenerator(card.NewSeededRNG(7))
	for i := range 20 {
		ca, err := a.Generate()
		if err != nil {
			t.Fatal(err)
		}
		cb, err := b.Generate()
		if err != nil {
			t.Fatal(err)
		}
		if ca != cb {
			t.Fatalf("card %d differs:\n%s\n---\n%s", i, ca, cb)
		}
	}
}

func TestEveryNumberIsReachable(t *testing.T) {
	g := card.NewGenerator(card.NewSeededRNG(1))
	seen := map[int]bool{}
	for range 400 {
		c, err := g.Generate()
		if err != nil {
			t.Fatal(err)
		}
		for _, n := range c.Numbers() {
			seen[n] = true
		}
	}
	for n := 1; n <= 90; n++ {
		if !seen[n] {
			t.Errorf("number %d never drawn", n)
		}
	}
}

func TestGenerateExhaustsWithBrokenRNG(t *testing.T) {
	g := card.NewGenerator(constantRNG(0), card.WithMaxAttempts(50))
	_, err := g.Generate()
	if !errors.Is(err, card.ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
	if !strings.Contains(err.Error(), "50 attempts") {
		t.Errorf("error should name the cap: %v", err)
	}
}

func TestWithMaxAttemptsIgnoresNonPositive(t *testing.T) {
	g := card.NewGenerator(card.NewSeededRNG(3), card.WithMaxAttempts(0))
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestPackageGenerate(t *testing.T) {
	c, err := card.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
}

func validCard() card.Card {
	return card.Card{
		{1, 0, 20, 0, 40, 0, 60, 0, 80},
		{0, 10, 0, 30, 0, 50, 0, 70, 90},
		{2, 11, 0, 31, 0, 51, 61, 0, 0},
	}
}

func TestValidate(t *testing.T) {
	if err := validCard().Validate(); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*card.Card)
		want   string
	}{
		{"out of range", func(c *card.Card) { c[0][0] = 10 }, "outside 1-9"},
		{"duplicate", func(c *card.Card) { c[2][0] = 1 }, "duplicate number 1"},
		{"short row", func(c *card.Card) { c[0][8] = card.Empty }, "row 0 has 4"},
		{"long row", func(c *card.Card) { c[0][1] = 12 }, "row 0 has 6"},
		{"empty column", func(c *card.Card) {
			c[0][2] = card.Empty
			c[0][7] = 71
		}, "column 2 has 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCard()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, card.ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	want := " 1 -- 20 -- 40 -- 60 -- 80\n" +
		"-- 10 -- 30 -- 50 -- 70 90\n" +
		" 2 11 -- 31 -- 51 61 -- --"
	if got := validCard().String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
