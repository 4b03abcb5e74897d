package cmd

import (
	"newsletter-studio/internal/plaintext"

	"github.com/spf13/cobra"
)

var plaintextOutFile string

// plaintextCmd projects a document to its plain-text digest.
var plaintextCmd = &cobra.Command{
	Use:   "plaintext <document.json>",
	Short: "Generate the plain-text version of a newsletter document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := readDocument(args[0])
		if err != nil {
			return err
		}
		text := plaintext.Generate(n) + "\n"
		return writeOutput(cmd.OutOrStdout(), plaintextOutFile, []byte(text))
	},
}

func init() {
	rootCmd.AddCommand(plaintextCmd)
	plaintextCmd.Flags().StringVarP(&plaintextOutFile, "output", "o", "", "write text to file instead of stdout")
}
