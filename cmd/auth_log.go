package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/silverfern314/notevault/internal/audit"

	"github.com/spf13/cobra"
)

var (
	auditLimit     int
	auditReverse   bool
	auditOperation string
	auditJSON      bool
)

func init() {
	authLogCmd.Flags().IntVarP(&auditLimit, "number", "n", 0, "limit number of entries shown")
	authLogCmd.Flags().BoolVar(&auditReverse, "reverse", false, "show most recent entries first")
	authLogCmd.Flags().StringVar(&auditOperation, "operation", "", "filter by operation name (comma-separated)")
	authLogCmd.Flags().BoolVar(&auditJSON, "json", false, "output as JSON array")
}

var authLogCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log of vault operations.

Shows who performed what operation and when. Only envelope metadata is
recorded; note titles and contents never appear here.

Examples:
  notevault auth log                            # Full log
  notevault auth log -n 10                      # Last 10 entries
  notevault auth log --reverse                  # Most recent first
  notevault auth log --operation sync.merge     # Filter by operation
  notevault auth log --json                     # JSON output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		AuthLogger.Infof("Reading audit log from %s", audit.LogPath())

		entries, err := audit.ReadEntries()
		if err != nil {
			return AuthLogger.ErrorfAndReturn("failed to read audit log: %v", err)
		}

		entries = audit.FilterByOperation(entries, auditOperation)
		if auditReverse {
			for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
		if auditLimit > 0 && len(entries) > auditLimit {
			if auditReverse {
				entries = entries[:auditLimit]
			} else {
				entries = entries[len(entries)-auditLimit:]
			}
		}

		if len(entries) == 0 {
			fmt.Println("No audit log entries found.")
			return nil
		}

		if auditJSON {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return AuthLogger.ErrorfAndReturn("failed to marshal entries: %v", err)
			}
			fmt.Println(string(data))
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%-27s  %-12s  %-13s  %s\n", e.Timestamp, e.User, e.Operation, e.Details())
		}
		return nil
	},
}
