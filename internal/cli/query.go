package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kondziu/fonologia/internal/index"
	"github.com/kondziu/fonologia/internal/phoneme"
)

// QueryOptions holds the feature constraints for the query command.
type QueryOptions struct {
	Height   string
	Backness string
	Rounding string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query vowels by articulatory features",
		Long: `Query the catalog through its SQLite feature index. Constraints
combine with AND; omitted constraints match everything.

Examples:
  fonologia query --height close
  fonologia query --height open_mid --backness back
  fonologia query --rounding any`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Height, "height", "", "height constraint (close..open)")
	cmd.Flags().StringVar(&opts.Backness, "backness", "", "backness constraint (front|central|back)")
	cmd.Flags().StringVar(&opts.Rounding, "rounding", "", "rounding constraint (rounded|unrounded|any)")

	return cmd
}

func runQuery(rootOpts *RootOptions, opts *QueryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	filter, err := buildFilter(opts)
	if err != nil {
		_ = formatter.Error(ErrCodeBadFeature, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeBadFeature, err)
	}

	ix, err := index.Open()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open index", err)
	}
	defer ix.Close()

	vowels, err := ix.Query(cmd.Context(), filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "query failed", err)
	}

	formatter.VerboseLog("Matched %d vowel(s)", len(vowels))

	if formatter.Format == "json" {
		return formatter.Success(wireVowels(vowels))
	}
	for _, v := range vowels {
		fmt.Fprintln(formatter.Writer, v.String())
	}
	return nil
}

// buildFilter validates flag values against the closed sets and assembles
// an index filter. Empty flags become nil constraints.
func buildFilter(opts *QueryOptions) (index.Filter, error) {
	var f index.Filter

	if opts.Height != "" {
		h := phoneme.Height(opts.Height)
		if !h.Valid() {
			return index.Filter{}, fmt.Errorf("invalid height %q: must be one of %v", opts.Height, phoneme.Heights())
		}
		f.Height = &h
	}
	if opts.Backness != "" {
		b := phoneme.Backness(opts.Backness)
		if !b.Valid() {
			return index.Filter{}, fmt.Errorf("invalid backness %q: must be one of %v", opts.Backness, phoneme.Backnesses())
		}
		f.Backness = &b
	}
	if opts.Rounding != "" {
		r := phoneme.Rounding(opts.Rounding)
		if !r.Valid() {
			return index.Filter{}, fmt.Errorf("invalid rounding %q: must be one of %v", opts.Rounding, phoneme.Roundings())
		}
		f.Rounding = &r
	}

	return f, nil
}
