package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/roach88/advkit/internal/compiler"
)

// FileValidation holds the validation result of one definition file.
type FileValidation struct {
	File   string                     `json:"file"`
	Errors []compiler.ValidationError `json:"errors,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid bool             `json:"valid"`
	Files []FileValidation `json:"files"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file...>",
		Short: "Validate definition files without writing anything",
		Long: `Validate advancement definition files.

Every file is decoded and checked; all problems are reported, not only the
first one. Nothing is written to the world or the registry.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	opts.resolve(cmd.ErrOrStderr())
	formatter := opts.formatter(cmd)

	results := make([]FileValidation, 0, len(paths))
	failed := false
	for _, path := range paths {
		formatter.VerboseLog("Validating %s", path)

		errs, err := validateFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("definition not found: %s", path), nil)
			}
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("failed to read %s", path), err)
		}
		if len(errs) > 0 {
			failed = true
		}
		results = append(results, FileValidation{File: path, Errors: errs})
	}

	if failed {
		return outputValidationErrors(formatter, results)
	}
	return outputValidateSuccess(formatter, results)
}

// validateFile returns the definition problems of path. The error is
// non-nil only when the file cannot be read at all.
func validateFile(path string) ([]compiler.ValidationError, error) {
	def, err := compiler.LoadFile(path)
	if err != nil {
		var verr compiler.ValidationError
		if errors.As(err, &verr) {
			return []compiler.ValidationError{verr}, nil
		}
		return nil, err
	}
	return compiler.Validate(def), nil
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, results []FileValidation) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Files: results})
	}

	fmt.Fprintf(formatter.Writer, "✓ All definitions valid (%d file(s))\n", len(results))
	return nil
}

// outputValidationErrors outputs every file's validation errors.
func outputValidationErrors(formatter *OutputFormatter, results []FileValidation) error {
	total := 0
	var first compiler.ValidationError
	for _, r := range results {
		if total == 0 && len(r.Errors) > 0 {
			first = r.Errors[0]
		}
		total += len(r.Errors)
	}

	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Files: results},
			Error: &CLIError{
				Code:    first.Code,
				Message: first.Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", total))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, r := range results {
		if len(r.Errors) == 0 {
			continue
		}
		fmt.Fprintln(formatter.Writer, r.File)
		for _, err := range r.Errors {
			if err.Line > 0 {
				fmt.Fprintf(formatter.Writer, "  line %d\n", err.Line)
			}
			fmt.Fprintf(formatter.Writer, "  %s: %s: %s\n", err.Code, err.Field, err.Message)
		}
		fmt.Fprintln(formatter.Writer)
	}

	// Validation failures = exit code 1
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", total))
}
