package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"newsletter-studio/internal/codec"

	"github.com/spf13/cobra"
)

var importOutFile string

// importCmd recovers the embedded document from an exported HTML file.
var importCmd = &cobra.Command{
	Use:   "import <exported.html>",
	Short: "Recover the newsletter document embedded in exported HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		n, err := codec.Import(string(raw))
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(n, "", "  ")
		if err != nil {
			return err
		}
		out = append(out, '\n')
		return writeOutput(cmd.OutOrStdout(), importOutFile, out)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importOutFile, "output", "o", "", "write document JSON to file instead of stdout")
}
