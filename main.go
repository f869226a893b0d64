package main

import (
	"fmt"
	"os"

	"github.com/silverfern314/notevault/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notevault",
	Short: "Notevault - personal encrypted notes with cloud sync.",
	Long: `Notevault is a command-line tool for keeping personal notes encrypted
at rest, organized into folders, and synchronized across machines.

Note titles and contents are encrypted with a key built from your
passphrase; the passphrase itself is never stored anywhere.

Available Commands:
  auth       Log in, log out, and inspect the session
  notes      Create, list, show, edit, and delete notes
  folders    Create, list, and delete folders
  sync       Push, pull, and merge the encrypted store with a remote

Run 'notevault help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("notevault", "alligator2", "green", true)
		banner.Print()
		fmt.Println()
		fmt.Println("Run 'notevault --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.AuthCmd)
	rootCmd.AddCommand(cmd.NotesCmd)
	rootCmd.AddCommand(cmd.FoldersCmd)
	rootCmd.AddCommand(cmd.SyncCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
