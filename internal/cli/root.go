// Package cli implements the studyhub command line front end. Commands are
// thin: they parse flags, gate on the caller's role and invoke the SDK; all
// session and recovery behavior lives in pkg/studysdk.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyhub",
	Short: "StudyHub is a tutoring marketplace client",
	Long: `Command line client for the StudyHub tutoring platform: browse and book
study sessions, manage materials and notes, and administer the platform.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		whoamiCmd,
		registerCmd,
		historyCmd,
		sessionsCmd,
		materialsCmd,
		notesCmd,
		bookingsCmd,
		reviewsCmd,
		announcementsCmd,
		usersCmd,
	)
}

// printf writes user-facing output, as opposed to logs which go to stderr.
func printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}
