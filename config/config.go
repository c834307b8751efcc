package config

import (
	"fmt"
	"strings"
)

// Range is a closed interval of accepted values for one Input field.
type Range struct {
	Field string
	Min   int
	Max   int
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= float64(r.Min) && v <= float64(r.Max)
}

// Clamp returns v limited to the range bounds.
func (r Range) Clamp(v int) int {
	return min(max(v, r.Min), r.Max)
}

// Accepted ranges, in Input units.
var (
	PageCountRange        = Range{"pageCount", 1, 100}
	FontSizeRange         = Range{"fontSize", 16, 36}
	OuterBorderRange      = Range{"outerBorder", 1, 10}
	InnerBorderRange      = Range{"innerBorder", 1, 5}
	BorderSpacingRange    = Range{"borderSpacing", 0, 20}
	CardWidthRange        = Range{"cardWidthTenths", 1060, 2120}
	CardHeightRange       = Range{"cardHeightTenths", 350, 1060}
	VerticalSpacingRange  = Range{"verticalSpacing", 7, 150}
	DateTimeFontSizeRange = Range{"dateTimeFontSize", 1, 20}
	NumberFontSizeRange   = Range{"numberFontSize", 8, 36}
	FooterMarginRange     = Range{"footerMargin", -50, 50}
	BarcodeSizeRange      = Range{"barcodeSize", 8, 60}
)

// Mode selects how out-of-range input is treated.
type Mode int

const (
	// Strict rejects any out-of-range value and unknown style or barcode
	// names.
	Strict Mode = iota
	// Lenient clamps numeric values to their bounds and replaces unknown
	// names with defaults, recording each change as an Adjustment.
	Lenient
)

// Adjustment records a value replaced while resolving an Input.
type Adjustment struct {
	Field string
	From  string
	To    string
}

func (a Adjustment) String() string {
	return fmt.Sprintf("%s: %s -> %s", a.Field, a.From, a.To)
}

// Config is the resolved, immutable description of one generation run.
// Sizes are in points unless the field name says otherwise.
type Config struct {
	PageCount        int
	FontSize         float64
	OuterBorder      float64
	InnerBorder      float64
	BorderSpacing    float64
	CardWidthTenths  int
	CardHeightTenths int
	CardWidth        float64 // derived from CardWidthTenths
	CardHeight       float64 // derived from CardHeightTenths
	VerticalSpacing  float64
	DateTimeFontSize float64
	NumberFontSize   float64
	FooterMargin     float64
	Font             Font

	Barcode      Barcode
	BarcodeSize  float64
	ControlSheet bool
	Background   string
	Title        string

	// Adjustments lists the values replaced during resolution. In Strict
	// mode only an unknown font family can appear here.
	Adjustments []Adjustment
}

// Default returns the resolved default configuration.
func Default() Config {
	c, err := New(DefaultInput(), Strict)
	if err != nil {
		panic(err)
	}
	return c
}

// New resolves in into a Config. In Strict mode every problem is reported in
// a single *ValidationError; in Lenient mode values are repaired instead.
// An unknown font family is replaced by DefaultFont.Family in either mode.
func New(in Input, mode Mode) (Config, error) {
	var (
		adj  []Adjustment
		errs []error
	)
	if mode == Lenient {
		adj = clampInput(&in)
	}

	family, err := ParseFamily(in.FontFamily)
	if err != nil {
		family = DefaultFont.Family
		adj = append(adj, Adjustment{Field: "fontFamily", From: in.FontFamily, To: string(family)})
	}
	style, err := ParseStyle(in.FontStyle)
	if err != nil {
		if mode == Strict {
			errs = append(errs, err)
		}
		style = DefaultFont.Style
		adj = append(adj, Adjustment{Field: "fontStyle", From: in.FontStyle, To: string(style)})
	}
	bc, err := ParseBarcode(in.Barcode)
	if err != nil {
		if mode == Strict {
			errs = append(errs, err)
		}
		bc = BarcodeNone
		adj = append(adj, Adjustment{Field: "barcode", From: in.Barcode, To: string(bc)})
	}

	c := Config{
		PageCount:        in.PageCount,
		FontSize:         float64(in.FontSize),
		OuterBorder:      float64(in.OuterBorder),
		InnerBorder:      float64(in.InnerBorder),
		BorderSpacing:    float64(in.BorderSpacing),
		CardWidthTenths:  in.CardWidthTenths,
		CardHeightTenths: in.CardHeightTenths,
		CardWidth:        TenthsToPoints(in.CardWidthTenths),
		CardHeight:       TenthsToPoints(in.CardHeightTenths),
		VerticalSpacing:  float64(in.VerticalSpacing),
		DateTimeFontSize: float64(in.DateTimeFontSize),
		NumberFontSize:   float64(in.NumberFontSize),
		FooterMargin:     float64(in.FooterMargin),
		Font:             Font{Family: family, Style: style},
		Barcode:          bc,
		BarcodeSize:      float64(in.BarcodeSize),
		ControlSheet:     in.ControlSheet,
		Background:       strings.TrimSpace(in.Background),
		Title:            strings.TrimSpace(in.Title),
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Barcode != BarcodeNone && in.BarcodeSize == 0 {
		c.BarcodeSize = float64(DefaultInput().BarcodeSize)
	}

	if mode == Strict {
		errs = append(errs, c.check()...)
		if len(errs) > 0 {
			return Config{}, &ValidationError{Errs: errs}
		}
	}
	c.Adjustments = adj
	return c, nil
}

// Validate checks every field against the range table. It returns nil or a
// *ValidationError.
func (c Config) Validate() error {
	if errs := c.check(); len(errs) > 0 {
		return &ValidationError{Errs: errs}
	}
	return nil
}

func (c Config) check() []error {
	fields := []struct {
		r Range
		v float64
	}{
		{PageCountRange, float64(c.PageCount)},
		{FontSizeRange, c.FontSize},
		{OuterBorderRange, c.OuterBorder},
		{InnerBorderRange, c.InnerBorder},
		{BorderSpacingRange, c.BorderSpacing},
		{CardWidthRange, float64(c.CardWidthTenths)},
		{CardHeightRange, float64(c.CardHeightTenths)},
		{VerticalSpacingRange, c.VerticalSpacing},
		{DateTimeFontSizeRange, c.DateTimeFontSize},
		{NumberFontSizeRange, c.NumberFontSize},
		{FooterMarginRange, c.FooterMargin},
	}
	if c.Barcode != "" && c.Barcode != BarcodeNone {
		fields = append(fields, struct {
			r Range
			v float64
		}{BarcodeSizeRange, c.BarcodeSize})
	}

	var errs []error
	for _, f := range fields {
		if !f.r.Contains(f.v) {
			errs = append(errs, &FieldError{Field: f.r.Field, Value: f.v, Min: float64(f.r.Min), Max: float64(f.r.Max)})
		}
	}
	if c.CardWidth != TenthsToPoints(c.CardWidthTenths) || c.CardHeight != TenthsToPoints(c.CardHeightTenths) {
		errs = append(errs, fmt.Errorf("config: card size %gx%g pt does not match %dx%d tenths of mm",
			c.CardWidth, c.CardHeight, c.CardWidthTenths, c.CardHeightTenths))
	}
	if _, err := ParseFamily(string(c.Font.Family)); err != nil || c.Font.Family == "" {
		errs = append(errs, fmt.Errorf("%w: family %q", ErrUnknownFont, c.Font.Family))
	}
	if _, err := ParseStyle(string(c.Font.Style)); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseBarcode(string(c.Barcode)); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// clampInput limits every numeric field of in to its range and returns the
// changes made.
func clampInput(in *Input) []Adjustment {
	fields := []struct {
		r Range
		v *int
	}{
		{PageCountRange, &in.PageCount},
		{FontSizeRange, &in.FontSize},
		{OuterBorderRange, &in.OuterBorder},
		{InnerBorderRange, &in.InnerBorder},
		{BorderSpacingRange, &in.BorderSpacing},
		{CardWidthRange, &in.CardWidthTenths},
		{CardHeightRange, &in.CardHeightTenths},
		{VerticalSpacingRange, &in.VerticalSpacing},
		{DateTimeFontSizeRange, &in.DateTimeFontSize},
		{NumberFontSizeRange, &in.NumberFontSize},
		{FooterMarginRange, &in.FooterMargin},
	}
	if bc, err := ParseBarcode(in.Barcode); err == nil && bc != BarcodeNone && in.BarcodeSize != 0 {
		fields = append(fields, struct {
			r Range
			v *int
		}{BarcodeSizeRange, &in.BarcodeSize})
	}

	var adj []Adjustment
	for _, f := range fields {
		if c := f.r.Clamp(*f.v); c != *f.v {
			adj = append(adj, Adjustment{Field: f.r.Field, From: fmt.Sprint(*f.v), To: fmt.Sprint(c)})
			*f.v = c
		}
	}
	return adj
}
