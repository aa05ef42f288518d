package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kondziu/fonologia/internal/catalog"
	"github.com/kondziu/fonologia/internal/phoneme"
)

// ExportDocument is the serialized catalog: a single top-level vowels list.
type ExportDocument struct {
	Vowels []phoneme.WireVowel `json:"vowels" yaml:"vowels"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as YAML or JSON",
		Long: `Export the full catalog in a machine-readable form. The default is a
YAML document; --format json switches to an indented JSON document.
Entries are sorted by articulation for stable output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, outputFile, cmd)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "write to file instead of stdout")

	return cmd
}

func runExport(opts *RootOptions, outputFile string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	vowels := catalog.All()
	sortByArticulation(vowels)
	doc := ExportDocument{Vowels: wireVowels(vowels)}

	var data []byte
	var err error
	if formatter.Format == "json" {
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to serialize catalog", err)
	}

	if outputFile == "" {
		_, err = formatter.Writer.Write(data)
		return err
	}

	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		msg := fmt.Sprintf("failed to write %s", outputFile)
		_ = formatter.Error(ErrCodeWriteFailed, msg, err.Error())
		return WrapExitError(ExitCommandError, msg, err)
	}
	formatter.VerboseLog("Wrote %d vowel(s) to %s", len(doc.Vowels), outputFile)
	return nil
}
