package cmd

import (
	"encoding/json"

	"newsletter-studio/internal/model"

	"github.com/spf13/cobra"
)

// defaultsCmd prints one of the three seed documents.
var defaultsCmd = &cobra.Command{
	Use:   "defaults <ff|briefing|letter>",
	Short: "Print the seed document for a template type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := model.DefaultNewsletter(model.TemplateType(args[0]))
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(n, "", "  ")
		if err != nil {
			return err
		}
		out = append(out, '\n')
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
