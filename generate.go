// Package lottopdf generates printable Russian Lotto cards as PDF documents.
//
// A Generator turns a validated config.Config into a Document: one column of
// cards per page, each card drawn with a double border, a 9x3 grid, its
// fifteen numbers and a footer label carrying a timestamp and the card's
// sequence number. Sequence numbers start at 1 and run across all pages.
//
// Example:
//
//	cfg, err := config.New(config.DefaultInput(), config.Strict)
//	if err != nil {
//	    return err
//	}
//	doc, err := lottopdf.New().Generate(cfg)
//	if err != nil {
//	    return err
//	}
//	return doc.OutputFile("cards.pdf")
package lottopdf

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lvillar/lottopdf/card"
	"github.com/lvillar/lottopdf/config"
	"github.com/lvillar/lottopdf/layout"
	"github.com/lvillar/lottopdf/ledger"
	"github.com/lvillar/lottopdf/render"
)

// Creator is written into the metadata of every document.
const Creator = "lottopdf"

// registryFont is used for the control sheet regardless of the card font.
var registryFont = ledger.FontSpec{Family: "Helvetica", Size: 9}

// Generator produces card documents. It holds no state between runs and
// may be reused.
type Generator struct {
	rng         card.RNG
	clock       func() time.Time
	logger      *slog.Logger
	fontDir     string
	maxAttempts int
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng:         card.DefaultRNG(),
		clock:       time.Now,
		logger:      slog.Default(),
		maxAttempts: card.DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders cfg.PageCount pages of cards, followed by the control
// sheet when cfg.ControlSheet is set. The requested font falls back to plain
// Helvetica if it cannot be embedded.
func (g *Generator) Generate(cfg config.Config) (*Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, newError("Generate", ErrConfig, err)
	}
	for _, a := range cfg.Adjustments {
		g.logger.Warn("configuration value adjusted", "field", a.Field, "from", a.From, "to", a.To)
	}

	id := uuid.New()
	log := g.logger.With("document", id.String())
	start := g.clock()

	page := layout.A4
	pdf := render.NewPDF(page)
	pdf.SetTitle(cfg.Title, true)
	pdf.SetSubject("Russian Lotto cards", true)
	pdf.SetKeywords("russian lotto bingo "+id.String(), false)
	pdf.SetCreator(Creator, true)
	pdf.SetCreationDate(start)
	pdf.SetCatalogSort(true)

	surface := render.NewPDFSurface(pdf, page)
	surface.SetFontDir(g.fontDir)
	face, font, err := g.embedFont(surface, cfg.Font, log)
	if err != nil {
		return nil, newError("Generate", ErrFont, err)
	}

	var bg *background
	if cfg.Background != "" {
		if bg, err = loadBackground(cfg.Background); err != nil {
			return nil, newError("Generate", ErrBackground, err)
		}
	}

	cards := card.NewGenerator(g.rng, card.WithMaxAttempts(g.maxAttempts))
	r := &render.Renderer{
		Surface:    surface,
		Metrics:    surface,
		Face:       face,
		Config:     cfg,
		Clock:      g.clock,
		CodePrefix: id.String()[:8],
	}

	perPage := layout.CardsPerPage(page, cfg)
	if perPage == 0 {
		log.Warn("card does not fit on a page", "cardHeight", cfg.CardHeight, "verticalSpacing", cfg.VerticalSpacing)
	}
	log.Info("generating cards", "pages", cfg.PageCount, "cardsPerPage", perPage, "font", face.Family+face.Style)

	doc := &Document{ID: id, Title: cfg.Title, Font: font, pdf: pdf}
	seq := 1
	for n := 1; n <= cfg.PageCount; n++ {
		pdf.AddPage()
		if bg != nil {
			if err := bg.stamp(pdf, page); err != nil {
				return nil, newError("Generate", ErrBackground, err)
			}
		}
		p := Page{Number: n}
		for slot := range perPage {
			c, err := cards.Generate()
			if err != nil {
				return nil, newError("Generate", ErrCardGeneration, err)
			}
			x, y := layout.CardPosition(page, slot, cfg)
			if err := r.DrawCard(c, x, y, seq); err != nil {
				return nil, newError("Generate", ErrRender, err)
			}
			p.Cards = append(p.Cards, seq)
			doc.Cards = append(doc.Cards, IssuedCard{Seq: seq, Page: n, Slot: slot, Card: c})
			seq++
		}
		doc.Pages = append(doc.Pages, p)
		log.Debug("page done", "page", n, "cards", len(p.Cards))
	}
	if bg != nil {
		if bg.fits(page) {
			log.Debug("background stamped", "path", bg.path, "width", bg.w, "height", bg.h)
		} else {
			log.Warn("background page shape differs from the card page, stretched to fit",
				"path", bg.path, "width", bg.w, "height", bg.h, "pageWidth", page.Width, "pageHeight", page.Height)
		}
	}

	if cfg.ControlSheet {
		before := pdf.PageCount()
		if err := ledger.RenderRegistry(pdf, entries(doc.Cards), registryFont); err != nil {
			return nil, newError("Generate", ErrRender, err)
		}
		doc.ControlPages = pdf.PageCount() - before
	}
	if pdf.Err() {
		return nil, newError("Generate", ErrRender, pdf.Error())
	}

	log.Info("cards generated", "pages", doc.PageCount(), "cards", len(doc.Cards), "elapsed", g.clock().Sub(start))
	return doc, nil
}

// embedFont embeds the requested font, falling back to the default core font.
// It returns the font that was actually embedded.
func (g *Generator) embedFont(s *render.PDFSurface, f config.Font, log *slog.Logger) (render.Face, config.Font, error) {
	face, err := s.Embed(f)
	if err == nil {
		return face, f, nil
	}
	log.Warn("font unavailable, using fallback", "font", f.String(), "fallback", config.DefaultFont.String(), "err", err)
	face, ferr := s.EmbedCore(config.DefaultFont)
	if ferr != nil {
		return render.Face{}, config.Font{}, errors.Join(err, ferr)
	}
	return face, config.DefaultFont, nil
}

func entries(cards []IssuedCard) []ledger.Entry {
	out := make([]ledger.Entry, len(cards))
	for i, c := range cards {
		out[i] = ledger.Entry{Seq: c.Seq, Page: c.Page, Slot: c.Slot, Card: c.Card}
	}
	return out
}

// Result is delivered by GenerateAsync.
type Result struct {
	Document *Document
	Err      error
}

// GenerateAsync runs Generate on its own goroutine. The returned channel
// yields exactly one Result and is then closed. A started run cannot be
// cancelled.
func (g *Generator) GenerateAsync(cfg config.Config) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		doc, err := g.Generate(cfg)
		ch <- Result{Document: doc, Err: err}
	}()
	return ch
}

// Generate renders cfg with a default Generator.
func Generate(cfg config.Config) (*Document, error) {
	return New().Generate(cfg)
}
