// Package pipeline composes validation, calculation, rendering, and PDF
// export into the two end-to-end operations the service exposes.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/rezonia/df-accountant/internal/assets"
	"github.com/rezonia/df-accountant/internal/export"
	"github.com/rezonia/df-accountant/internal/invoice"
	"github.com/rezonia/df-accountant/internal/model"
	"github.com/rezonia/df-accountant/internal/render"
	"github.com/rezonia/df-accountant/internal/schema"
)

// Exporter prints rendered HTML to PDF bytes.
type Exporter interface {
	Export(ctx context.Context, html string) ([]byte, error)
}

// Pipeline wires the stages together. Construct one per process and share
// it across requests.
type Pipeline struct {
	calc     *invoice.Calculator
	renderer *render.Renderer
	exporter Exporter
	clock    clockwork.Clock

	branding    assets.Branding
	assetsDir   string
	exportOpts  []export.Option
	hasBranding bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock injects the clock used for invoice numbers, issue dates, and
// file names.
func WithClock(clock clockwork.Clock) Option {
	return func(p *Pipeline) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithBranding uses already-loaded branding assets instead of reading
// them from disk.
func WithBranding(b assets.Branding) Option {
	return func(p *Pipeline) {
		p.branding = b
		p.hasBranding = true
	}
}

// WithAssetsDir loads branding assets from dir. Ignored when WithBranding
// was also given.
func WithAssetsDir(dir string) Option {
	return func(p *Pipeline) { p.assetsDir = dir }
}

// WithExporter replaces the default Chromium exporter.
func WithExporter(e Exporter) Option {
	return func(p *Pipeline) {
		if e != nil {
			p.exporter = e
		}
	}
}

// WithExportOptions configures the default exporter. Ignored when
// WithExporter was also given.
func WithExportOptions(opts ...export.Option) Option {
	return func(p *Pipeline) { p.exportOpts = append(p.exportOpts, opts...) }
}

// NewPipeline creates a pipeline with the given options applied.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(p)
	}

	if !p.hasBranding && p.assetsDir != "" {
		p.branding = assets.Load(p.assetsDir)
	}
	p.calc = invoice.NewCalculator(p.clock)
	p.renderer = render.NewRenderer(p.branding)
	if p.exporter == nil {
		p.exporter = export.NewExporter(p.exportOpts...)
	}
	return p
}

// Result carries the artifacts of one run. PDF and Filename stay empty
// for previews.
type Result struct {
	Invoice  *model.Invoice
	HTML     string
	PDF      []byte
	Filename string
}

// Preview validates raw JSON and renders the invoice as HTML without
// printing it.
func (p *Pipeline) Preview(ctx context.Context, raw []byte) (*Result, error) {
	req, err := schema.ParseRequest(raw)
	if err != nil {
		return nil, err
	}

	inv := p.calc.Build(req)
	html, err := p.renderer.Render(inv)
	if err != nil {
		return nil, err
	}

	return &Result{Invoice: inv, HTML: html}, nil
}

// Generate runs the full pipeline: validate, calculate, render, and print
// to PDF, naming the document after the student and generation date.
func (p *Pipeline) Generate(ctx context.Context, raw []byte) (*Result, error) {
	res, err := p.Preview(ctx, raw)
	if err != nil {
		return nil, err
	}

	pdf, err := p.exporter.Export(ctx, res.HTML)
	if err != nil {
		return nil, err
	}

	res.PDF = pdf
	res.Filename = Filename(res.Invoice.Request.Student, p.clock.Now())
	return res, nil
}

// Filename builds the download name for a generated PDF. The random
// suffix keeps repeated generations for the same student distinct.
func Filename(student model.StudentInfo, at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "invoice_" + sanitize(student.LastName) + "_" + sanitize(student.FirstName) +
		"_" + at.Format("20060102") + "_" + suffix + ".pdf"
}

// sanitize keeps letters, digits, dashes, and underscores so the name is
// safe for file systems and Content-Disposition headers.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
