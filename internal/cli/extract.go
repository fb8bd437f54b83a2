package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboco-io/mdsite/internal/ir"
	"github.com/roboco-io/mdsite/internal/parser"
)

var (
	extractOutput      string
	extractFormat      string
	extractPrettyPrint bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract the intermediate representation of a Markdown file",
	Long: `Parse a Markdown file and print its IR (Intermediate Representation):
the ordered blocks with their classified kinds.

Output formats are JSON and a plain text summary.

Examples:
  mdsite extract content/index.md
  mdsite extract content/index.md -o index.json
  mdsite extract content/index.md --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file path (default: stdout)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "json", "output format (json, text)")
	extractCmd.Flags().BoolVar(&extractPrettyPrint, "pretty", true, "indent JSON output")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	doc, err := parser.ParseFile(inputPath)
	if err != nil {
		return err
	}

	output, err := formatOutput(doc, extractFormat)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if extractOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}
	if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "IR extracted: %s\n", extractOutput)
	}
	return nil
}

func formatOutput(doc *ir.Document, format string) (string, error) {
	switch format {
	case "json":
		var data []byte
		var err error
		if extractPrettyPrint {
			data, err = json.MarshalIndent(doc, "", "  ")
		} else {
			data, err = json.Marshal(doc)
		}
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "text":
		return formatAsText(doc), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatAsText(doc *ir.Document) string {
	var sb strings.Builder

	if doc.Metadata.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n\n---\n\n", doc.Metadata.Title)
	}

	for i, block := range doc.Content {
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, block.Kind)
		for _, line := range strings.Split(block.Text, "\n") {
			sb.WriteString("    " + line + "\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
