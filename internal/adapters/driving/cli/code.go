package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alfredtools/launchkit/internal/scriptfilter"
)

var codeCmd = &cobra.Command{
	Use:   "code [query]",
	Short: "Rank zoxide directories for opening in VS Code",
	Long: `Ranks the directories known to zoxide against the query and prints
them as a Script Filter. zoxide's own pick for the query is boosted to
the top, and project directories ending in /src are kept ahead of their
parent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCode,
}

func init() {
	rootCmd.AddCommand(codeCmd)
}

func runCode(cmd *cobra.Command, args []string) error {
	if services.History == nil || services.PathRanker == nil {
		return errors.New("path pipeline not configured")
	}

	query := queryArg(args)
	filter := scriptfilter.New()

	paths, err := services.History.Paths(cmd.Context())
	if err != nil {
		filter.AddPlaceholder("Error listing directories", err.Error())
		return filter.Write(cmd.OutOrStdout())
	}
	if len(paths) == 0 {
		filter.AddPlaceholder("No results found", "Try a different search term")
		return filter.Write(cmd.OutOrStdout())
	}

	hint := services.History.Best(cmd.Context(), query)
	for _, sp := range services.PathRanker.Rank(paths, query, hint) {
		filter.Add(scriptfilter.Item{
			Title:    services.PathRanker.Label(sp.Path),
			Subtitle: "Open with VSCode",
			Arg:      sp.Path,
			Valid:    true,
			Mods: map[string]scriptfilter.Mod{
				"cmd": {Valid: true, Arg: sp.Path, Subtitle: "Copy path to clipboard"},
				"alt": {Valid: true, Arg: sp.Path, Subtitle: "Reveal in Finder"},
			},
		})
	}
	return filter.Write(cmd.OutOrStdout())
}
