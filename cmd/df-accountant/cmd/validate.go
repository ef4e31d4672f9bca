package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/df-accountant/internal/model"
	"github.com/rezonia/df-accountant/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate request files",
	Long: `Validate one or more JSON request files against the invoice request
schema.

Checks performed:
  - All required entities and fields present
  - Field types match the schema
  - Dates in YYYY-MM-DD form
  - Amounts and counts non-negative

Examples:
  df-accountant validate request.json
  df-accountant validate requests/*.json -f table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// ValidationResult holds the result of validating a single file
type ValidationResult struct {
	File       string            `json:"file"`
	Valid      bool              `json:"valid"`
	Violations []model.Violation `json:"violations"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no request files found")
	}

	results := make([]*ValidationResult, 0, len(files))
	allValid := true

	for _, file := range files {
		result := validateFile(file)
		results = append(results, result)

		if !result.Valid {
			allValid = false
		}
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID\n", r.File)
			} else {
				fmt.Printf("✗ %s: INVALID\n", r.File)
				for _, v := range r.Violations {
					fmt.Printf("  - %s\n", v.String())
				}
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}

	return nil
}

func validateFile(path string) *ValidationResult {
	result := &ValidationResult{
		File:       path,
		Valid:      true,
		Violations: []model.Violation{},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		result.Valid = false
		result.Violations = append(result.Violations, model.Violation{
			Field: "$", Rule: "file", Message: fmt.Sprintf("failed to read file: %v", err),
		})
		return result
	}

	if _, err := schema.ParseRequest(raw); err != nil {
		result.Valid = false
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			result.Violations = vErr.Violations
		} else {
			result.Violations = append(result.Violations, model.Violation{
				Field: "$", Rule: "parse", Message: err.Error(),
			})
		}
	}

	return result
}
