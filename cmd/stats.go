package cmd

import (
	"newsletter-studio/internal/report"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// statsReport is the YAML document emitted by the stats command.
type statsReport struct {
	Stats      report.Stats            `yaml:"stats"`
	Validation report.ValidationResult `yaml:"validation"`
}

// statsCmd prints content statistics and lint findings for a document.
var statsCmd = &cobra.Command{
	Use:   "stats <document.json>",
	Short: "Print content statistics and validation findings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := readDocument(args[0])
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(statsReport{
			Stats:      report.Collect(n),
			Validation: report.Validate(n),
		})
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
