package cmd

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"dexsect/internal/dexsect/styles"
)

//go:embed docs.md
var docsMarkdown string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the bundled bytecode reference notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdout.Fd()) {
			fmt.Fprint(cmd.OutOrStdout(), docsMarkdown)
			return nil
		}

		width := 80
		if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
			width = w
		}

		renderer := styles.MarkdownRenderer(width - 2)
		rendered, err := renderer.Render(docsMarkdown)
		if err != nil {
			return fmt.Errorf("failed to render docs: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}
