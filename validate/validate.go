package validate

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/textcircle/bfs"
	"github.com/katalvlaran/textcircle/diagram"
	"github.com/katalvlaran/textcircle/gridgraph"
	"github.com/katalvlaran/textcircle/ring"
)

// Validator runs the ordered checks. A Validator holds no per-call state
// and is safe for concurrent use.
type Validator struct {
	log logrus.FieldLogger
	ctx context.Context
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for per-stage debug entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// WithContext sets the context forwarded to the escape search.
func WithContext(ctx context.Context) Option {
	return func(v *Validator) {
		if ctx != nil {
			v.ctx = ctx
		}
	}
}

// New returns a Validator. Without WithLogger nothing is logged.
func New(opts ...Option) *Validator {
	v := &Validator{
		log: discardLogger(),
		ctx: context.Background(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

var defaultValidator = New()

// Validate runs every check on text with a background context and returns
// the report.
func Validate(text string) Report {
	// The background context is never cancelled and the search gets no
	// options, so the escape search cannot fail here.
	r, _ := defaultValidator.Validate(text)
	return r
}

// Validate runs every check on text. The error is non-nil only when the
// escape search is aborted by the Validator's context; every property of
// the input itself is reported through the Report.
func (v *Validator) Validate(text string) (Report, error) {
	g, err := gridgraph.Parse(text)
	if err != nil {
		return v.done(Report{Kind: EmptyInput}), nil
	}
	log := v.log.WithField("side", g.Height())

	if !g.IsSquare() {
		log.WithFields(logrus.Fields{
			"min_width": g.MinWidth(),
			"max_width": g.MaxWidth(),
		}).Debug("shape check failed")
		return v.done(Report{Kind: NotSquare}), nil
	}

	h := g.Height()
	if h%2 == 0 {
		return v.done(Report{Kind: EvenSideLength}), nil
	}

	symbols := g.DistinctSymbols()
	if len(symbols) != 2 {
		log.WithField("symbols", len(symbols)).Debug("symbol check failed")
		return v.done(Report{Kind: WrongSymbolCount}), nil
	}

	r := ring.Radius(h)
	background := g.Cell(r, r)
	misplaced := g.Locations(func(l gridgraph.Location, c rune) bool {
		return c != background && ring.RequiredBackground(l.X, l.Y, r)
	})
	if len(misplaced) > 0 {
		return v.done(Report{
			Kind:       MisplacedBackground,
			Radius:     r,
			Background: background,
			Misplaced:  misplaced,
		}), nil
	}

	res, err := bfs.Escape(g, bfs.WithContext(v.ctx))
	if err != nil {
		log.WithError(err).Warn("escape search aborted")
		return Report{}, err
	}
	log.WithFields(logrus.Fields{
		"checked": len(res.Order),
		"found":   res.Found,
	}).Debug("escape search finished")

	if !res.Found {
		return v.done(Report{Kind: Valid, Radius: r, Background: background}), nil
	}

	path := res.Path()
	glyph := diagram.PavingGlyph(symbols)
	return v.done(Report{
		Kind:       EscapePathExists,
		Radius:     r,
		Background: background,
		Path:       path,
		Glyph:      glyph,
		Diagram:    diagram.Rows(g, path, glyph),
	}), nil
}

// done logs the final kind and passes the report through.
func (v *Validator) done(r Report) Report {
	v.log.WithField("kind", r.Kind.String()).Debug("validation finished")
	return r
}
