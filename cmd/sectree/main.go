package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ymiyake/sectree/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sectree",
	Short: "Turn documents into labeled outline trees",
	Long: `sectree reads a document (txt, md, html, pdf, docx), detects section
headings, builds an outline tree bounded to a chosen depth and exports it as
JSON, Graphviz DOT, a mermaid mindmap, a flat outline or chart-ready edge
rows.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("sectree %s\n", version.String()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
