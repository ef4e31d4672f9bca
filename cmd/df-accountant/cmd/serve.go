package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/df-accountant/internal/config"
	"github.com/rezonia/df-accountant/internal/server"
	"github.com/rezonia/df-accountant/pkg/logging"
)

var (
	serverAddr    string
	serverDebug   bool
	readTimeout   time.Duration
	writeTimeout  time.Duration
	exportTimeout time.Duration
	configFile    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for generating invoices.

The API provides endpoints for:
  - POST /api/v1/getInvoice  - Generate a PDF invoice
  - POST /preview            - Render the invoice as HTML
  - GET  /health             - Health check
  - GET  /metrics            - Prometheus metrics

Examples:
  # Start server on default port
  df-accountant serve

  # Start on custom port with branding
  df-accountant serve --address :8080 --assets-dir static/logo

  # Start from a config file
  df-accountant serve --config config.yaml

  # Start in debug mode
  df-accountant serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 2*time.Minute, "HTTP write timeout")
	serveCmd.Flags().DurationVar(&exportTimeout, "export-timeout", 30*time.Second, "PDF export timeout")
	serveCmd.Flags().StringVar(&configFile, "config", "", "YAML config file (flags override it)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logging.Setup()

	cfg := &server.Config{
		Address:       serverAddr,
		AssetsDir:     assetsDir,
		ChromiumPath:  chromiumPath,
		ExportTimeout: exportTimeout,
		ReadTimeout:   readTimeout,
		WriteTimeout:  writeTimeout,
		Debug:         serverDebug,
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		applyFileConfig(cmd, cfg, fileCfg)
	}

	srv := server.NewServer(cfg)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", cfg.Address)
	if cfg.AssetsDir != "" {
		fmt.Printf("Branding assets from %s\n", cfg.AssetsDir)
	} else {
		fmt.Println("Branding disabled (no assets directory)")
	}

	return srv.Run()
}

// applyFileConfig copies file values into the server config for every
// flag the user did not set explicitly.
func applyFileConfig(cmd *cobra.Command, cfg *server.Config, fileCfg *config.Config) {
	if !cmd.Flags().Changed("address") {
		cfg.Address = fileCfg.Address
	}
	if !cmd.Flags().Changed("debug") {
		cfg.Debug = fileCfg.Debug
	}
	if !cmd.Flags().Changed("read-timeout") {
		cfg.ReadTimeout = fileCfg.ReadTimeout
	}
	if !cmd.Flags().Changed("write-timeout") {
		cfg.WriteTimeout = fileCfg.WriteTimeout
	}
	if !cmd.Flags().Changed("export-timeout") {
		cfg.ExportTimeout = fileCfg.ExportTimeout
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = fileCfg.AssetsDir
	}
	if cfg.ChromiumPath == "" {
		cfg.ChromiumPath = fileCfg.ChromiumPath
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fileCfg.BaseURL
	}
}
