package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	assetsDir    string
	chromiumPath string
)

var rootCmd = &cobra.Command{
	Use:   "df-accountant",
	Short: "Generate driving-school invoices from JSON requests",
	Long: `df-accountant turns driving-school enrollment data into printable
PDF invoices.

A request describes the school, the student, the enrollment file, the
teaching category, and what was paid. The tool validates it, computes
the billable line items, renders an HTML invoice, and prints it to PDF
through a headless Chromium.

Examples:
  # Generate a PDF invoice from a request file
  df-accountant generate request.json

  # Preview the rendered HTML without printing
  df-accountant preview request.json

  # Validate request files
  df-accountant validate requests/*.json

  # Start the HTTP API server
  df-accountant serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets-dir", "", "Directory with branding images (env: DFACC_ASSETS_DIR)")
	rootCmd.PersistentFlags().StringVar(&chromiumPath, "chromium-path", "", "Path to the Chromium binary (env: DFACC_CHROMIUM_PATH)")

	// Load from environment variables if not set via flags
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if assetsDir == "" {
		assetsDir = os.Getenv("DFACC_ASSETS_DIR")
	}
	if chromiumPath == "" {
		chromiumPath = os.Getenv("DFACC_CHROMIUM_PATH")
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
