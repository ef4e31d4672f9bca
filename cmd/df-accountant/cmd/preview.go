package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/df-accountant/pkg/accountant"
)

var previewOutput string

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render a request as HTML without printing",
	Long: `Render a JSON request file as the HTML invoice page.

The output is the same self-contained page that would be printed to
PDF, useful for checking layout and data before generating.

Examples:
  df-accountant preview request.json
  df-accountant preview request.json -o invoice.html`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Output file (default: derived from the request name)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	svc := accountant.NewService(accountant.Options{AssetsDir: assetsDir})
	html, err := svc.Preview(ctx, raw)
	if err != nil {
		return err
	}

	target := previewOutput
	if target == "" {
		base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		target = base + ".html"
	}

	if err := os.WriteFile(target, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing HTML: %w", err)
	}

	fmt.Printf("✓ %s -> %s\n", args[0], target)
	return nil
}
