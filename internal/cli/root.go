// Package cli is the offline workout log tool: it parses logs and prints
// the same summaries the server computes, without a database.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "workoutlog",
		Short:         "Parse and summarize workout logs offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newParseCmd(), newSummaryCmd())
	return rootCmd
}

// readLog reads the log from the file named by args, or stdin when there is
// none or it is "-".
func readLog(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(raw), nil
}
