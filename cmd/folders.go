package cmd

import (
	logger "github.com/silverfern314/notevault/internal/logging"
	"github.com/spf13/cobra"
)

var (
	foldersVerbose bool
	foldersDebug   bool
	FoldersLogger  logger.Logger

	FoldersCmd = &cobra.Command{
		Use:   "folders",
		Short: "Manage note folders",
		Long: `Provides creation, listing, and deletion of folders.

Folder names are stored unencrypted; only note titles and contents are
ciphertext. Deleting a folder also deletes every note inside it.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			FoldersLogger = logger.Logger{
				Verbose: foldersVerbose,
				Debug:   foldersDebug,
			}
			FoldersLogger.Debugf("Initializing folders command with verbose=%t, debug=%t", foldersVerbose, foldersDebug)
		},
	}
)

func init() {
	FoldersCmd.PersistentFlags().BoolVarP(&foldersVerbose, "verbose", "v", false, "enable verbose output")
	FoldersCmd.PersistentFlags().BoolVar(&foldersDebug, "debug", false, "enable debug output")

	FoldersCmd.AddCommand(foldersCreateCmd)
	FoldersCmd.AddCommand(foldersListCmd)
	FoldersCmd.AddCommand(foldersDeleteCmd)
}
