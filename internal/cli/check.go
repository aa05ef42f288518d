package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kondziu/fonologia/internal/catalog"
	"github.com/kondziu/fonologia/internal/phoneme"
)

// CheckResult holds integrity-check results.
type CheckResult struct {
	Sound  bool                       `json:"sound"`
	Count  int                        `json:"count"`
	Errors []*phoneme.ValidationError `json:"errors,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify catalog integrity",
		Long: `Re-verify the built-in catalog: cardinality, symbol uniqueness,
closed-set membership, and the single rounding-unspecified schwa.

The same checks run at startup (a violation there aborts the process), so
this command passing is the expected state; it exists to make the
invariants inspectable.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd)
		},
	}
}

func runCheck(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	errs := catalog.Check()
	result := CheckResult{
		Sound:  len(errs) == 0,
		Count:  len(catalog.All()),
		Errors: errs,
	}

	if result.Sound {
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(formatter.Writer, "✓ Catalog sound (%d vowels)\n", result.Count)
		return nil
	}

	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}
		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("check failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Catalog check failed")
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		fmt.Fprintf(formatter.Writer, "  %s: %s: %s\n", err.Code, err.Field, err.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("check failed with %d error(s)", len(errs)))
}
