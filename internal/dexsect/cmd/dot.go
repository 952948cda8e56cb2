package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"dexsect/internal/dalvik"
)

var dotCmd = &cobra.Command{
	Use:   "dot [file]",
	Short: "Export the block graph as Graphviz DOT",
	Long: `Lift a raw code-unit buffer into basic blocks and print the
control-flow graph in DOT format, one box node per block labelled with its
disassembly. Pipe the output into the dot tool to render it.`,
	Example: `
# Render a method's control-flow graph
dexsect dot method.bin | dot -Tsvg -o method.svg
  `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, _ := cmd.Flags().GetIntSlice("entry")
		blocks, entries, err := liftFile(args[0], entries)
		if err != nil {
			return err
		}
		writeDot(cmd.OutOrStdout(), blocks, entries)
		return nil
	},
}

func writeDot(w io.Writer, blocks dalvik.Blocks, entries []int) {
	fmt.Fprintln(w, "digraph {")
	fmt.Fprintln(w, "    nojustify=true")
	fmt.Fprintln(w, `    node [shape=box margin="0.8,0.1" fontname="monospace"]`)

	for _, addr := range blocks.Addrs() {
		bb := blocks[addr]
		var label strings.Builder
		for _, in := range bb.Insts {
			label.WriteString(strings.ReplaceAll(in.String(), `"`, `\"`))
			// left-justified linebreak
			label.WriteString(`\l`)
		}
		fmt.Fprintf(w, "    %d [label=\"%s\"]\n", addr, label.String())
	}

	fmt.Fprintln(w)

	// handler entry points get a labelled node with a dashed edge, so
	// they stand apart from normal flow
	for _, e := range entries {
		fmt.Fprintf(w, "    entry%d [label=\"entry %04x\"]\n", e, e)
		fmt.Fprintf(w, "    entry%d -> %d [style=dashed]\n", e, e)
	}

	for _, addr := range blocks.Addrs() {
		switch next := blocks[addr].Next; next.Kind {
		case dalvik.NextCond:
			fmt.Fprintf(w, "    %d -> %d [color=green weight=10 headport=n]\n", addr, next.T)
			fmt.Fprintf(w, "    %d -> %d [color=red weight=5 headport=n]\n", addr, next.F)
		case dalvik.NextGoto:
			fmt.Fprintf(w, "    %d -> %d [weight=15 penwidth=2 headport=n]\n", addr, next.T)
		}
	}

	fmt.Fprintln(w, "}")
}
