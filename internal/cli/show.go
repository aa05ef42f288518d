package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kondziu/fonologia/internal/catalog"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <symbol>",
		Short: "Show one vowel by its IPA symbol",
		Long: `Look up a single vowel by its IPA glyph and print its classification.

The symbol is Unicode-normalized before lookup, so a decomposed spelling
(base letter plus combining diacritic) finds the precomposed entry.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}
}

func runShow(opts *RootOptions, symbol string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	v, ok := catalog.BySymbol(symbol)
	if !ok {
		msg := fmt.Sprintf("no vowel with symbol %q", symbol)
		_ = formatter.Error(ErrCodeUnknownSymbol, msg, nil)
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", ErrCodeUnknownSymbol, msg))
	}

	if formatter.Format == "json" {
		return formatter.Success(v.Wire())
	}
	fmt.Fprintln(formatter.Writer, v.String())
	return nil
}
