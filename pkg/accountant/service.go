package accountant

import (
	"context"
	"time"

	"github.com/rezonia/df-accountant/internal/export"
	"github.com/rezonia/df-accountant/internal/pipeline"
)

// Options configures a Service.
type Options struct {
	// AssetsDir holds the branding images embedded into documents.
	// Empty means unbranded output.
	AssetsDir string

	// ChromiumPath points at a specific browser binary. Empty lets the
	// exporter find one on PATH.
	ChromiumPath string

	// ExportTimeout bounds a single PDF export. Zero keeps the default.
	ExportTimeout time.Duration

	// BaseURL resolves relative links in rendered pages during printing.
	BaseURL string
}

// Document is a generated PDF ready to be stored or served.
type Document struct {
	Filename string
	Data     []byte
}

// Service generates invoice documents. It is safe for concurrent use.
type Service struct {
	pipeline *pipeline.Pipeline
}

// NewService creates a service with the given options.
func NewService(opts Options) *Service {
	var exportOpts []export.Option
	if opts.ChromiumPath != "" {
		exportOpts = append(exportOpts, export.WithExecPath(opts.ChromiumPath))
	}
	if opts.ExportTimeout > 0 {
		exportOpts = append(exportOpts, export.WithTimeout(opts.ExportTimeout))
	}
	if opts.BaseURL != "" {
		exportOpts = append(exportOpts, export.WithBaseURL(opts.BaseURL))
	}

	return &Service{
		pipeline: pipeline.NewPipeline(
			pipeline.WithAssetsDir(opts.AssetsDir),
			pipeline.WithExportOptions(exportOpts...),
		),
	}
}

// Preview validates raw JSON and returns the invoice as a self-contained
// HTML page.
func (s *Service) Preview(ctx context.Context, raw []byte) (string, error) {
	res, err := s.pipeline.Preview(ctx, raw)
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}

// Generate validates raw JSON and returns the finished PDF document.
func (s *Service) Generate(ctx context.Context, raw []byte) (*Document, error) {
	res, err := s.pipeline.Generate(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &Document{Filename: res.Filename, Data: res.PDF}, nil
}
