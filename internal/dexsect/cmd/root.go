package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"dexsect/internal/dexsect/log"
	"dexsect/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "dexsect [file]",
	Short: "Terminal-based Dalvik bytecode explorer",
	Long: `Dexsect decodes Dalvik bytecode and lifts it into basic blocks.
It operates on a raw little-endian code-unit buffer, the insns array of a
method as extracted from a dex file, and provides an interactive TUI for
browsing the control-flow graph.`,
	Example: `
# Browse a method interactively
dexsect method.bin

# Non-interactive block summary, with a catch handler entry point
dexsect -n --entry 24 method.bin
  `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cpuprofile, _ := cmd.Flags().GetString("cpuprofile")
		if cpuprofile != "" {
			f, err := os.Create(cpuprofile)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		memprofile, _ := cmd.Flags().GetString("memprofile")
		if memprofile != "" {
			defer func() {
				f, err := os.Create(memprofile)
				if err != nil {
					fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
					return
				}
				defer f.Close()
				if err := pprof.WriteHeapProfile(f); err != nil {
					fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
				}
			}()
		}

		debug, _ := cmd.Flags().GetBool("debug")
		log.Setup(debug || logging.IsDebug())

		noTUI, _ := cmd.Flags().GetBool("no-tui")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		// no-tui mode when output is being piped
		if !term.IsTerminal(os.Stdout.Fd()) {
			noTUI = true
			os.Setenv("DEXSECT_NO_COLOR", "1")
		}
		if noTUI {
			os.Setenv("DEXSECT_NO_COLOR", "1")
		}

		file := args[0]
		entries, _ := cmd.Flags().GetIntSlice("entry")

		if jsonOutput {
			return runBlocksJSON(file, entries)
		}
		if noTUI {
			return runBlocksText(cmd.OutOrStdout(), file, entries)
		}

		program := tea.NewProgram(
			newModel(file, entries),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)
		if _, err := program.Run(); err != nil {
			slog.Error("TUI run error", "error", err)
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.PersistentFlags().IntSliceP("entry", "e", nil, "Extra entry point address in code units (repeatable)")

	rootCmd.Flags().BoolP("help", "h", false, "Help")
	rootCmd.Flags().BoolP("no-tui", "n", false, "Show block summary without TUI")
	rootCmd.Flags().BoolP("json", "j", false, "Output blocks as JSON for regression testing")
	rootCmd.Flags().String("cpuprofile", "", "Write CPU profile to file")
	rootCmd.Flags().String("memprofile", "", "Write memory profile to file")

	rootCmd.AddCommand(disasmCmd)
	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(logsCmd)
}

func Execute() {
	// Bypass fang's markdown rendering for plain-output invocations and
	// when output is being piped.
	noTUI := false
	for _, arg := range os.Args[1:] {
		if arg == "--no-tui" || arg == "-n" || arg == "--json" || arg == "-j" {
			noTUI = true
			break
		}
	}
	if !noTUI && !term.IsTerminal(os.Stdout.Fd()) {
		noTUI = true
	}

	if noTUI {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
	} else {
		if err := fang.Execute(
			context.Background(),
			rootCmd,
			fang.WithNotifySignal(os.Interrupt),
		); err != nil {
			os.Exit(1)
		}
	}
}
