package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roboco-io/mdsite/internal/htmlnode"
	"github.com/roboco-io/mdsite/internal/parser"
	"github.com/roboco-io/mdsite/internal/render"
)

var convertOutput string

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a Markdown file to an HTML fragment",
	Long: `Convert a single Markdown file to HTML without applying the page template.

The output is the document container element with every block rendered in
order. Conversion is all-or-nothing: an unterminated inline delimiter anywhere
in the file fails the whole conversion.

Examples:
  mdsite convert content/index.md
  mdsite convert content/index.md -o index.html`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file path (default: stdout)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	doc, err := parser.ParseFile(inputPath)
	if err != nil {
		return err
	}

	if verbose && !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "parsed %s: %d blocks\n", inputPath, len(doc.Content))
	}

	root, err := render.Document(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	out, err := htmlnode.Serialize(root)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if convertOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(convertOutput, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "converted: %s\n", convertOutput)
	}
	return nil
}
