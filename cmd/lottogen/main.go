// Command lottogen writes a PDF of Russian Lotto cards.
//
// Parameters come from built-in defaults, then an optional YAML or JSON file
// (-config or LOTTO_CONFIG), then any flags given on the command line:
//
//	lottogen -pages 10 -font "Times New Roman" -font-style bold -o cards.pdf
//	lottogen -config layout.yaml -control-sheet -barcode qr
//
// Values outside their documented range are an error unless -lenient is set,
// in which case they are clamped and a warning is logged. Without -o the file
// is named russian-lotto-cards-<UTC timestamp>.pdf in the current directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lvillar/lottopdf"
	"github.com/lvillar/lottopdf/card"
	"github.com/lvillar/lottopdf/config"
)

func main() {
	if err := run(os.Args[1:], os.Stderr, time.Now); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "lottogen: %v\n", err)
		}
		os.Exit(1)
	}
}

// settings are the flags that do not map onto config.Input.
type settings struct {
	configPath string
	out        string
	seed       uint64
	lenient    bool
	fontDir    string
	logLevel   string
	logJSON    bool
}

func run(args []string, stderr io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("lottogen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var s settings
	fs.StringVar(&s.configPath, "config", envOr("LOTTO_CONFIG", ""), "YAML or JSON parameter file")
	fs.StringVar(&s.out, "o", "", "output file (default russian-lotto-cards-<timestamp>.pdf)")
	fs.Uint64Var(&s.seed, "seed", 0, "seed for reproducible card numbers")
	fs.BoolVar(&s.lenient, "lenient", false, "clamp out-of-range values instead of failing")
	fs.StringVar(&s.fontDir, "font-dir", envOr("LOTTO_FONT_DIR", ""), "directory of TrueType fonts to embed")
	fs.StringVar(&s.logLevel, "log-level", envOr("LOTTO_LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.BoolVar(&s.logJSON, "log-json", false, "log as JSON")

	var fl config.Input
	overrides := inputFlags(fs, &fl)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	level, err := parseLogLevel(s.logLevel)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(stderr, opts)
	if s.logJSON {
		handler = slog.NewJSONHandler(stderr, opts)
	}
	logger := slog.New(handler)

	in := config.DefaultInput()
	if s.configPath != "" {
		if in, err = config.LoadFile(s.configPath); err != nil {
			return err
		}
		logger.Debug("loaded parameters", "path", s.configPath)
	}
	seeded := false
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply(&in)
		}
		if f.Name == "seed" {
			seeded = true
		}
	})

	mode := config.Strict
	if s.lenient {
		mode = config.Lenient
	}
	cfg, err := config.New(in, mode)
	if err != nil {
		return err
	}

	gopts := []lottopdf.Option{
		lottopdf.WithLogger(logger),
		lottopdf.WithFontDir(s.fontDir),
		lottopdf.WithClock(now),
	}
	if seeded {
		gopts = append(gopts, lottopdf.WithRNG(card.NewSeededRNG(s.seed)))
	}
	doc, err := lottopdf.New(gopts...).Generate(cfg)
	if err != nil {
		return err
	}

	out := s.out
	if out == "" {
		out = outputName(now())
	}
	if err := doc.OutputFile(out); err != nil {
		return err
	}
	logger.Info("wrote document", "path", out, "pages", doc.PageCount(), "cards", len(doc.Cards))
	return nil
}

// inputFlags registers one flag per Input field on fs, bound to fl, and
// returns for each flag name a function copying its value into an Input.
func inputFlags(fs *flag.FlagSet, fl *config.Input) map[string]func(*config.Input) {
	d := config.DefaultInput()
	ints := []struct {
		name  string
		usage string
		dst   *int
		def   int
		apply func(in *config.Input, v int)
	}{
		{"pages", "number of pages", &fl.PageCount, d.PageCount, func(in *config.Input, v int) { in.PageCount = v }},
		{"font-size", "size of the card numbers in pt", &fl.FontSize, d.FontSize, func(in *config.Input, v int) { in.FontSize = v }},
		{"outer-border", "outer border width in pt", &fl.OuterBorder, d.OuterBorder, func(in *config.Input, v int) { in.OuterBorder = v }},
		{"inner-border", "inner border width in pt", &fl.InnerBorder, d.InnerBorder, func(in *config.Input, v int) { in.InnerBorder = v }},
		{"border-spacing", "gap between the borders in pt", &fl.BorderSpacing, d.BorderSpacing, func(in *config.Input, v int) { in.BorderSpacing = v }},
		{"card-width", "card width in tenths of a millimeter", &fl.CardWidthTenths, d.CardWidthTenths, func(in *config.Input, v int) { in.CardWidthTenths = v }},
		{"card-height", "card height in tenths of a millimeter", &fl.CardHeightTenths, d.CardHeightTenths, func(in *config.Input, v int) { in.CardHeightTenths = v }},
		{"vertical-spacing", "space between cards in pt", &fl.VerticalSpacing, d.VerticalSpacing, func(in *config.Input, v int) { in.VerticalSpacing = v }},
		{"datetime-font-size", "footer timestamp size in pt", &fl.DateTimeFontSize, d.DateTimeFontSize, func(in *config.Input, v int) { in.DateTimeFontSize = v }},
		{"number-font-size", "footer card number size in pt", &fl.NumberFontSize, d.NumberFontSize, func(in *config.Input, v int) { in.NumberFontSize = v }},
		{"footer-margin", "footer baseline above the card bottom in pt, may be negative", &fl.FooterMargin, d.FooterMargin, func(in *config.Input, v int) { in.FooterMargin = v }},
		{"barcode-size", "barcode height in pt", &fl.BarcodeSize, d.BarcodeSize, func(in *config.Input, v int) { in.BarcodeSize = v }},
	}
	strs := []struct {
		name  string
		usage string
		dst   *string
		def   string
		apply func(in *config.Input, v string)
	}{
		{"font", "Helvetica, Arial, Times New Roman or Courier", &fl.FontFamily, d.FontFamily, func(in *config.Input, v string) { in.FontFamily = v }},
		{"font-style", "plain, bold, italic or bold-italic", &fl.FontStyle, d.FontStyle, func(in *config.Input, v string) { in.FontStyle = v }},
		{"barcode", "none, qr, code128 or pdf417", &fl.Barcode, d.Barcode, func(in *config.Input, v string) { in.Barcode = v }},
		{"background", "PDF whose first page is printed under the cards", &fl.Background, d.Background, func(in *config.Input, v string) { in.Background = v }},
		{"title", "document title", &fl.Title, d.Title, func(in *config.Input, v string) { in.Title = v }},
	}

	apply := make(map[string]func(*config.Input))
	for _, f := range ints {
		fs.IntVar(f.dst, f.name, f.def, f.usage)
		dst, set := f.dst, f.apply
		apply[f.name] = func(in *config.Input) { set(in, *dst) }
	}
	for _, f := range strs {
		fs.StringVar(f.dst, f.name, f.def, f.usage)
		dst, set := f.dst, f.apply
		apply[f.name] = func(in *config.Input) { set(in, *dst) }
	}
	fs.BoolVar(&fl.ControlSheet, "control-sheet", false, "append a registry of every card")
	apply["control-sheet"] = func(in *config.Input) { in.ControlSheet = fl.ControlSheet }
	return apply
}

// outputName is the default file name for a document written at t.
func outputName(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("russian-lotto-cards-%s-%03dZ.pdf",
		t.Format("2006-01-02-15-04-05"), t.Nanosecond()/int(time.Millisecond))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
