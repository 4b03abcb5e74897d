package cmd

import (
	"fmt"
	"log/slog"

	"newsletter-studio/internal/codec"

	"github.com/spf13/cobra"
)

var (
	exportOutFile   string
	exportMinify    bool
	exportStripJSON bool
)

// exportCmd renders a document and writes the final Slate-ready HTML file,
// with the source document embedded for later re-import unless stripped.
var exportCmd = &cobra.Command{
	Use:   "export <document.json>",
	Short: "Export a newsletter document as a Slate-ready HTML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := readDocument(args[0])
		if err != nil {
			return err
		}

		minify := exportMinify
		stripJSON := exportStripJSON
		if !cmd.Flags().Changed("minify") {
			minify = GetConfig().Export.Minify
		}
		if !cmd.Flags().Changed("strip-json") {
			stripJSON = GetConfig().Export.StripJSON
		}

		res, err := codec.Export(n, codec.Options{Minify: minify, StripEmbeddedData: stripJSON})
		if err != nil {
			return err
		}
		if res.ClippingRisk {
			slog.Warn("export exceeds clipping threshold",
				"size", res.Size, "threshold", codec.GmailClipThreshold)
		}

		out := exportOutFile
		if out == "" {
			out = res.Filename
		}
		if err := writeOutput(cmd.OutOrStdout(), out, []byte(res.HTML)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported: %s (%d bytes)\n", out, res.Size)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutFile, "output", "o", "", "output file (default: derived from template and date)")
	exportCmd.Flags().BoolVar(&exportMinify, "minify", true, "collapse whitespace between tags")
	exportCmd.Flags().BoolVar(&exportStripJSON, "strip-json", false, "omit the embedded document (production export, not re-importable)")
}
