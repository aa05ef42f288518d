package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kondziu/fonologia/internal/catalog"
	"github.com/kondziu/fonologia/internal/phoneme"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every vowel in the catalog",
		Long: `Print every catalog vowel, one per line: the symbol followed by its
height, backness, and rounding. Lines are sorted by articulation (close to
open, front to back) for stable output; the catalog itself is unordered.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	vowels := catalog.All()
	sortByArticulation(vowels)

	formatter.VerboseLog("Catalog holds %d vowel(s)", len(vowels))

	if formatter.Format == "json" {
		return formatter.Success(wireVowels(vowels))
	}

	for _, v := range vowels {
		fmt.Fprintln(formatter.Writer, v.String())
	}
	return nil
}

// sortByArticulation orders vowels close-to-open, front-to-back, then by
// rounding and symbol. Display order only; nothing in the catalog contract
// depends on it.
func sortByArticulation(vowels []phoneme.Vowel) {
	sort.Slice(vowels, func(i, j int) bool {
		a, b := vowels[i], vowels[j]
		if a.Height() != b.Height() {
			return a.Height().Ord() < b.Height().Ord()
		}
		if a.Backness() != b.Backness() {
			return a.Backness().Ord() < b.Backness().Ord()
		}
		if a.Rounding() != b.Rounding() {
			return a.Rounding().Ord() < b.Rounding().Ord()
		}
		return a.Symbol() < b.Symbol()
	})
}

// wireVowels converts vowels to their serialized form for JSON output.
func wireVowels(vowels []phoneme.Vowel) []phoneme.WireVowel {
	out := make([]phoneme.WireVowel, len(vowels))
	for i, v := range vowels {
		out[i] = v.Wire()
	}
	return out
}
