package config_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/lvillar/lottopdf/config"
)

func TestDefaultIsValid(t *testing.T) {
	c := config.Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.CardWidth != 557 || c.CardHeight != 186 {
		t.Errorf("card size = %gx%g, want 557x186", c.CardWidth, c.CardHeight)
	}
	if c.Font != config.DefaultFont {
		t.Errorf("font = %v, want %v", c.Font, config.DefaultFont)
	}
	if c.Title != config.DefaultTitle {
		t.Errorf("title = %q", c.Title)
	}
}

func TestTenthsToPoints(t *testing.T) {
	tests := []struct {
		tenths int
		want   float64
	}{
		{1580, 448},
		{1965, 557},
		{657, 186},
		{1060, 300},
		{2120, 601},
		{350, 99},
		{0, 0},
	}
	for _, tt := range tests {
		if got := config.TenthsToPoints(tt.tenths); got != tt.want {
			t.Errorf("TenthsToPoints(%d) = %g, want %g", tt.tenths, got, tt.want)
		}
	}
}

func TestStrictRejectsEveryBadField(t *testing.T) {
	in := config.DefaultInput()
	in.PageCount = 0
	in.FontSize = 40
	in.FooterMargin = -51
	in.CardWidthTenths = 3000

	_, err := config.New(in, config.Strict)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, config.ErrOutOfRange) {
		t.Errorf("error %v does not wrap ErrOutOfRange", err)
	}

	var verr *config.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is %T, want *ValidationError", err)
	}
	want := []string{"pageCount", "fontSize", "cardWidthTenths", "footerMargin"}
	got := verr.Fields()
	if !slices.Equal(got, want) {
		t.Errorf("fields = %v, want %v", got, want)
	}
}

func TestStrictAcceptsBounds(t *testing.T) {
	ranges := []config.Range{
		config.PageCountRange, config.FontSizeRange, config.OuterBorderRange,
		config.InnerBorderRange, config.BorderSpacingRange, config.CardWidthRange,
		config.CardHeightRange, config.VerticalSpacingRange, config.DateTimeFontSizeRange,
		config.NumberFontSizeRange, config.FooterMarginRange,
	}
	set := func(in *config.Input, field string, v int) {
		switch field {
		case "pageCount":
			in.PageCount = v
		case "fontSize":
			in.FontSize = v
		case "outerBorder":
			in.OuterBorder = v
		case "innerBorder":
			in.InnerBorder = v
		case "borderSpacing":
			in.BorderSpacing = v
		case "cardWidthTenths":
			in.CardWidthTenths = v
		case "cardHeightTenths":
			in.CardHeightTenths = v
		case "verticalSpacing":
			in.VerticalSpacing = v
		case "dateTimeFontSize":
			in.DateTimeFontSize = v
		case "numberFontSize":
			in.NumberFontSize = v
		case "footerMargin":
			in.FooterMargin = v
		default:
			t.Fatalf("unhandled field %s", field)
		}
	}

	for _, r := range ranges {
		for _, v := range []int{r.Min, r.Max} {
			in := config.DefaultInput()
			set(&in, r.Field, v)
			if _, err := config.New(in, config.Strict); err != nil {
				t.Errorf("%s = %d rejected: %v", r.Field, v, err)
			}
		}
		for _, v := range []int{r.Min - 1, r.Max + 1} {
			in := config.DefaultInput()
			set(&in, r.Field, v)
			if _, err := config.New(in, config.Strict); !errors.Is(err, config.ErrOutOfRange) {
				t.Errorf("%s = %d: err = %v, want ErrOutOfRange", r.Field, v, err)
			}
		}
	}
}

func TestStrictRejectsUnknownNames(t *testing.T) {
	in := config.DefaultInput()
	in.FontStyle = "underline"
	in.Barcode = "aztec"

	_, err := config.New(in, config.Strict)
	if !errors.Is(err, config.ErrUnknownFont) {
		t.Errorf("err = %v, want ErrUnknownFont", err)
	}
	if !errors.Is(err, config.ErrUnknownBarcode) {
		t.Errorf("err = %v, want ErrUnknownBarcode", err)
	}
}

func TestUnknownFamilyFallsBackInEveryMode(t *testing.T) {
	for _, mode := range []config.Mode{config.Strict, config.Lenient} {
		in := config.DefaultInput()
		in.FontFamily = "Comic Sans"
		in.FontStyle = "bold"

		c, err := config.New(in, mode)
		if err != nil {
			t.Fatalf("mode %d: %v", mode, err)
		}
		if c.Font != (config.Font{Family: config.FamilyHelvetica, Style: config.StyleBold}) {
			t.Errorf("mode %d: font = %v, want Helvetica bold", mode, c.Font)
		}
		want := []config.Adjustment{{Field: "fontFamily", From: "Comic Sans", To: "Helvetica"}}
		if !slices.Equal(c.Adjustments, want) {
			t.Errorf("mode %d: adjustments = %v, want %v", mode, c.Adjustments, want)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("mode %d: resolved config invalid: %v", mode, err)
		}
	}
}

func TestLenientClamps(t *testing.T) {
	in := config.DefaultInput()
	in.PageCount = 500
	in.InnerBorder = 0
	in.FooterMargin = -80
	in.FontFamily = "Wingdings"

	c, err := config.New(in, config.Lenient)
	if err != nil {
		t.Fatalf("lenient: %v", err)
	}
	if c.PageCount != 100 {
		t.Errorf("PageCount = %d, want 100", c.PageCount)
	}
	if c.InnerBorder != 1 {
		t.Errorf("InnerBorder = %g, want 1", c.InnerBorder)
	}
	if c.FooterMargin != -50 {
		t.Errorf("FooterMargin = %g, want -50", c.FooterMargin)
	}
	if c.Font.Family != config.FamilyHelvetica {
		t.Errorf("Family = %q, want Helvetica", c.Font.Family)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("clamped config invalid: %v", err)
	}

	var fields []string
	for _, a := range c.Adjustments {
		fields = append(fields, a.Field)
	}
	want := []string{"pageCount", "innerBorder", "footerMargin", "fontFamily"}
	if !slices.Equal(fields, want) {
		t.Errorf("adjusted fields = %v, want %v", fields, want)
	}
}

func TestValidateCatchesInconsistentCardSize(t *testing.T) {
	c := config.Default()
	c.CardWidth = 10
	if err := c.Validate(); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestBarcodeSizeCheckedOnlyWithBarcode(t *testing.T) {
	in := config.DefaultInput()
	in.BarcodeSize = 200
	if _, err := config.New(in, config.Strict); err != nil {
		t.Fatalf("barcode size ignored without barcode, got %v", err)
	}

	in.Barcode = "qr"
	if _, err := config.New(in, config.Strict); !errors.Is(err, config.ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}

	in.BarcodeSize = 0
	c, err := config.New(in, config.Strict)
	if err != nil {
		t.Fatalf("zero size should default: %v", err)
	}
	if c.BarcodeSize != 24 {
		t.Errorf("BarcodeSize = %g, want 24", c.BarcodeSize)
	}
}

func TestParseFontNames(t *testing.T) {
	families := map[string]config.Family{
		"helvetica":       config.FamilyHelvetica,
		" Arial ":         config.FamilyArial,
		"Times New Roman": config.FamilyTimesNewRoman,
		"times":           config.FamilyTimesNewRoman,
		"COURIER":         config.FamilyCourier,
		"":                config.FamilyHelvetica,
	}
	for in, want := range families {
		got, err := config.ParseFamily(in)
		if err != nil || got != want {
			t.Errorf("ParseFamily(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	styles := map[string]config.Style{
		"":            config.StylePlain,
		"Bold":        config.StyleBold,
		"oblique":     config.StyleItalic,
		"bold-italic": config.StyleBoldItalic,
		"BI":          config.StyleBoldItalic,
	}
	for in, want := range styles {
		got, err := config.ParseStyle(in)
		if err != nil || got != want {
			t.Errorf("ParseStyle(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := config.ParseStyle("underline"); !errors.Is(err, config.ErrUnknownFont) {
		t.Errorf("ParseStyle(underline) err = %v", err)
	}
}

func TestFontString(t *testing.T) {
	if s := (config.Font{Family: config.FamilyCourier, Style: config.StyleBold}).String(); s != "Courier bold" {
		t.Errorf("String() = %q", s)
	}
	if s := config.DefaultFont.String(); s != "Helvetica" {
		t.Errorf("String() = %q", s)
	}
}
