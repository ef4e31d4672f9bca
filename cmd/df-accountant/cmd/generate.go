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

var (
	outputDir       string
	generateTimeout time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate [files...]",
	Short: "Generate PDF invoices from request files",
	Long: `Generate one or more PDF invoices from JSON request files.

Each request is validated, priced, rendered, and printed to PDF through
a headless Chromium. The PDF is written next to the request file unless
--output-dir says otherwise.

Examples:
  df-accountant generate request.json
  df-accountant generate requests/*.json --output-dir invoices/
  df-accountant generate requests/ --assets-dir static/logo`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for generated PDFs (default: next to each request)")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 2*time.Minute, "Generation timeout per file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no request files found")
	}

	printVerbose("Found %d request files\n", len(files))

	svc := accountant.NewService(accountant.Options{
		AssetsDir:    assetsDir,
		ChromiumPath: chromiumPath,
	})

	var failed int
	for _, file := range files {
		printVerbose("Generating: %s\n", file)

		if err := generateFile(svc, file); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", file, err)
			continue
		}
	}

	if failed > 0 {
		return fmt.Errorf("generation failed for %d of %d files", failed, len(files))
	}
	return nil
}

func generateFile(svc *accountant.Service, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	doc, err := svc.Generate(ctx, raw)
	if err != nil {
		return err
	}

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(path)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	target := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(target, doc.Data, 0o644); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}

	fmt.Printf("✓ %s -> %s\n", path, target)
	return nil
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("file not found: %s", arg)
			}

			if info.IsDir() {
				err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if !info.IsDir() && isRequestFile(path) {
						files = append(files, path)
					}
					return nil
				})
				if err != nil {
					return nil, err
				}
			} else {
				files = append(files, arg)
			}
		} else {
			for _, match := range matches {
				info, err := os.Stat(match)
				if err != nil {
					continue
				}
				if !info.IsDir() && isRequestFile(match) {
					files = append(files, match)
				}
			}
		}
	}

	return files, nil
}

func isRequestFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}
