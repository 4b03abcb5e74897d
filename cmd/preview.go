package cmd

import (
	"newsletter-studio/internal/render"

	"github.com/spf13/cobra"
)

var previewOutFile string

// previewCmd renders a document file to full email HTML.
var previewCmd = &cobra.Command{
	Use:   "preview <document.json>",
	Short: "Render a newsletter document to email HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := readDocument(args[0])
		if err != nil {
			return err
		}
		html, err := render.FullEmail(n)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), previewOutFile, []byte(html))
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewOutFile, "output", "o", "", "write HTML to file instead of stdout")
}
