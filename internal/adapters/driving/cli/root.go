// Package cli implements the cobra command surface of launchkit.
//
// Each command gathers candidates from its driven source, runs the
// matching ranking service, and renders an Alfred Script Filter on
// stdout. Failures of a source never escape an invocation: they surface
// as a single non-actionable placeholder item.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/alfredtools/launchkit/internal/core/ports/driven"
	"github.com/alfredtools/launchkit/internal/core/ports/driving"
	"github.com/alfredtools/launchkit/internal/logger"
)

var (
	verbose bool
	version = "dev"
)

// Services bundles the sources and rankers the commands run on.
// Wiring happens once in main; tests inject mocks through SetServices.
type Services struct {
	Bookmarks driven.BookmarkSource
	Hosts     driven.HostSource
	History   driven.PathHistory

	BookmarkSearcher driving.BookmarkSearcher
	PathRanker       driving.PathRanker
	HostMatcher      driving.HostMatcher
}

var services Services

// SetServices wires adapters and ranking services into the command tree.
func SetServices(s Services) {
	services = s
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "launchkit",
	Short: "Alfred launcher tools for bookmarks, projects and SSH hosts",
	Long: `Launchkit feeds Alfred Script Filters with ranked local candidates:
Chrome bookmarks, zoxide project directories and SSH host aliases.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.InitFromEnv()
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print diagnostic output to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// queryArg returns the optional query argument.
func queryArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
