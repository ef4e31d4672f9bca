// Package server exposes invoice generation over HTTP.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rezonia/df-accountant/internal/export"
	"github.com/rezonia/df-accountant/internal/model"
	"github.com/rezonia/df-accountant/internal/pipeline"
)

const version = "1.0.0"

// Config holds server configuration
type Config struct {
	Address       string
	AssetsDir     string
	ChromiumPath  string
	BaseURL       string
	ExportTimeout time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	Debug         bool

	// Exporter overrides the default Chromium exporter. Tests inject a
	// stub here; production leaves it nil.
	Exporter pipeline.Exporter
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	pipeline *pipeline.Pipeline
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(requestMetrics())

	opts := []pipeline.Option{
		pipeline.WithAssetsDir(config.AssetsDir),
	}
	if config.Exporter != nil {
		opts = append(opts, pipeline.WithExporter(config.Exporter))
	} else {
		var exportOpts []export.Option
		if config.ChromiumPath != "" {
			exportOpts = append(exportOpts, export.WithExecPath(config.ChromiumPath))
		}
		if config.BaseURL != "" {
			exportOpts = append(exportOpts, export.WithBaseURL(config.BaseURL))
		}
		if config.ExportTimeout > 0 {
			exportOpts = append(exportOpts, export.WithTimeout(config.ExportTimeout))
		}
		opts = append(opts, pipeline.WithExportOptions(exportOpts...))
	}

	s := &Server{
		config:   config,
		router:   router,
		pipeline: pipeline.NewPipeline(opts...),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/preview", s.handlePreview)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/getInvoice", s.handleGetInvoice)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, IndexResponse{
		Service: "df-accountant",
		Version: version,
		Endpoints: []string{
			"GET /health",
			"GET /metrics",
			"POST /preview",
			"POST /api/v1/getInvoice",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleGetInvoice(c *gin.Context) {
	body, ok := s.requestBody(c)
	if !ok {
		return
	}

	result, err := s.pipeline.Generate(c.Request.Context(), body)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

func (s *Server) handlePreview(c *gin.Context) {
	body, ok := s.requestBody(c)
	if !ok {
		return
	}

	result, err := s.pipeline.Preview(c.Request.Context(), body)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(result.HTML))
}

func (s *Server) requestBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return nil, false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No JSON data provided"})
		return nil, false
	}
	return body, true
}

func (s *Server) writeError(c *gin.Context, err error) {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Data validation failed",
			Details: vErr.Violations,
		})
		return
	}

	slog.Error("invoice generation failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "invoice generation failed"})
}
