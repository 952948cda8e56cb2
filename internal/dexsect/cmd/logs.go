package cmd

import (
	"fmt"
	"os"

	"github.com/nxadm/tail"
	"github.com/spf13/cobra"

	"dexsect/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the debug log file",
	Long: `Show the debug log file written when DEXSECT_LOG_TO_FILE=1 is
set. With --follow the command keeps streaming new lines as they arrive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		follow, _ := cmd.Flags().GetBool("follow")
		path := logging.LogFilePath()

		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("no log file at %s; run with DEXSECT_LOG_TO_FILE=1 first", path)
			}
			return err
		}

		t, err := tail.TailFile(path, tail.Config{
			Follow: follow,
			ReOpen: follow,
			Logger: tail.DiscardingLogger,
		})
		if err != nil {
			return fmt.Errorf("failed to tail %s: %w", path, err)
		}
		defer t.Cleanup()

		for line := range t.Lines {
			if line.Err != nil {
				return line.Err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line.Text)
		}
		return nil
	},
}

func init() {
	logsCmd.Flags().BoolP("follow", "f", false, "Keep streaming new log lines")
}
