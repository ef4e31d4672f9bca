// Package export prints rendered HTML to PDF through a headless Chromium
// and verifies the produced bytes before handing them back.
package export

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/rezonia/df-accountant/internal/model"
)

const defaultTimeout = 30 * time.Second

// Exporter converts HTML pages to PDF bytes. Each Export call spins up
// its own browser context; the exporter itself is stateless and safe for
// concurrent use.
type Exporter struct {
	execPath string
	timeout  time.Duration
	baseURL  string
	conf     *pdfmodel.Configuration
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithExecPath points the exporter at a specific Chromium binary instead
// of whatever chromedp finds on PATH.
func WithExecPath(path string) Option {
	return func(e *Exporter) { e.execPath = path }
}

// WithTimeout bounds a single export. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(e *Exporter) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithBaseURL injects a base href so relative links in the page resolve
// during printing.
func WithBaseURL(u string) Option {
	return func(e *Exporter) { e.baseURL = u }
}

// NewExporter creates an exporter with the given options applied.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		timeout: defaultTimeout,
		conf:    pdfmodel.NewDefaultConfiguration(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export prints html to PDF. The returned bytes are a validated PDF with
// at least one page.
func (e *Exporter) Export(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	runCtx, cancelRun := chromedp.NewContext(allocCtx)
	defer cancelRun()

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate(dataURL(e.withBase(html))),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, perr := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if perr != nil {
				return perr
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, model.NewRenderError("export", "printing page to PDF", err)
	}

	if err := e.verify(pdf); err != nil {
		return nil, err
	}
	return pdf, nil
}

// withBase splices a base href into the document head so that relative
// URLs resolve against the configured base.
func (e *Exporter) withBase(html string) string {
	if e.baseURL == "" {
		return html
	}
	tag := `<base href="` + e.baseURL + `">`
	if i := strings.Index(html, "<head>"); i >= 0 {
		return html[:i+len("<head>")] + tag + html[i+len("<head>"):]
	}
	return tag + html
}

func dataURL(html string) string {
	return "data:text/html," + url.PathEscape(html)
}

// verify checks that the browser actually produced a well-formed PDF
// with at least one page.
func (e *Exporter) verify(pdf []byte) error {
	rs := bytes.NewReader(pdf)
	if err := api.Validate(rs, e.conf); err != nil {
		return model.NewRenderError("export", "produced PDF failed validation", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return model.NewRenderError("export", "rewinding PDF buffer", err)
	}
	pages, err := api.PageCount(rs, e.conf)
	if err != nil {
		return model.NewRenderError("export", "counting PDF pages", err)
	}
	if pages < 1 {
		return model.NewRenderError("export", "produced PDF has no pages", nil)
	}
	return nil
}
