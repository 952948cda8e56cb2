package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dexsect/internal/ui/colorize"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [file]",
	Short: "Linear disassembly listing",
	Long: `Disassemble a raw code-unit buffer from start to end, one
instruction per line with code-unit addresses. Inline payload tables are
skipped by their encoded length and shown as comments.`,
	Example: `
# Disassemble a method body
dexsect disasm method.bin
  `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := loadCode(args[0])
		if err != nil {
			return err
		}
		text, err := listing(code)
		if err != nil {
			return err
		}
		colored, err := colorize.Listing(text)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), colored)
		return nil
	},
}
