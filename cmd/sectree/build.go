package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/ymiyake/sectree/internal/export"
	"github.com/ymiyake/sectree/internal/extract"
	"github.com/ymiyake/sectree/internal/outline"
)

var (
	buildDepth  int
	buildFormat string
	buildOut    string
)

var (
	// headingStyle for section titles in terminal output
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// leafStyle for body leaves
	leafStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// warnStyle for the empty-depth warning
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Build and export the outline tree for a document",
	Long:  `Extract text lines from a document, build the heading tree and export it in the chosen format.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		ex, err := extract.ForFile(path)
		if err != nil {
			return err
		}
		if pdf, ok := ex.(*extract.PDFExtractor); ok {
			pdf.FallbackPdftotext = true
		}

		lines, err := ex.Lines(f, filepath.Base(path))
		if err != nil {
			return fmt.Errorf("extract %s: %w", path, err)
		}

		tree := outline.Trim(outline.Promote(outline.Build(lines)), buildDepth)
		if tree == nil {
			fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("no nodes at this depth"))
			return nil
		}

		// The terminal gets a styled tree; everything else is plain text.
		if buildOut == "" && buildFormat == "outline" {
			printStyledOutline(cmd.OutOrStdout(), tree)
			return nil
		}

		out, err := renderFormat(tree, buildFormat)
		if err != nil {
			return err
		}
		if buildOut != "" {
			return os.WriteFile(buildOut, []byte(out), 0o644)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	buildCmd.Flags().IntVarP(&buildDepth, "depth", "d", outline.DefaultDepth, "Maximum tree depth to keep")
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "outline", "Export format (json, dot, mermaid, outline, edges)")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Write output to a file instead of stdout")
	rootCmd.AddCommand(buildCmd)
}

func renderFormat(tree *outline.Node, format string) (string, error) {
	switch format {
	case "json":
		data, err := export.JSON(tree)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "dot":
		return export.DOT(tree), nil
	case "mermaid":
		return export.Mindmap(tree), nil
	case "outline":
		return export.Outline(tree), nil
	case "edges":
		data, err := json.MarshalIndent(export.Edges(tree), "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format: %s (want json, dot, mermaid, outline or edges)", format)
	}
}

// printStyledOutline renders the outline with heading and leaf colors.
func printStyledOutline(w io.Writer, n *outline.Node) {
	type frame struct {
		node  *outline.Node
		depth int
	}
	stack := []frame{{node: n}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		style := leafStyle
		if len(f.node.Children) > 0 || f.depth == 0 {
			style = headingStyle
		}
		fmt.Fprintln(w, strings.Repeat("  ", f.depth)+"- "+style.Render(f.node.Title))

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], depth: f.depth + 1})
		}
	}
}
