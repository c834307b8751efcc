package lottopdf

import (
	"log/slog"
	"time"

	"github.com/lvillar/lottopdf/card"
)

// Option is a functional option for configuring a Generator via New.
type Option func(*Generator)

// WithRNG sets the source of randomness for card numbers. Use
// card.NewSeededRNG for reproducible documents; a seeded RNG must not be
// shared by concurrent Generate calls.
func WithRNG(rng card.RNG) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithClock sets the time source for footer timestamps and the document
// creation date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.clock = now
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithFontDir makes the Generator embed TrueType fonts from dir instead of
// the built-in PDF fonts. Files are named after the family without spaces,
// plus -Bold, -Italic or -BoldItalic, e.g. TimesNewRoman-Italic.ttf.
func WithFontDir(dir string) Option {
	return func(g *Generator) {
		g.fontDir = dir
	}
}

// WithMaxAttempts bounds the whole-card retries per card slot.
// See card.DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}
