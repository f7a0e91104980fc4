package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alfredtools/launchkit/internal/core/domain"
	"github.com/alfredtools/launchkit/internal/scriptfilter"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks [query]",
	Short: "Rank Chrome bookmarks for Alfred",
	Long: `Ranks the bookmarks of the selected Chrome profile against the query
and prints them as a Script Filter. Without a query the first bookmarks
pass through unranked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBookmarks,
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
}

func runBookmarks(cmd *cobra.Command, args []string) error {
	if services.Bookmarks == nil || services.BookmarkSearcher == nil {
		return errors.New("bookmark pipeline not configured")
	}

	filter := scriptfilter.New()
	candidates, err := services.Bookmarks.Bookmarks(cmd.Context())
	if err != nil {
		title, subtitle := bookmarkFailure(err)
		filter.AddPlaceholder(title, subtitle)
		return filter.Write(cmd.OutOrStdout())
	}

	for _, sb := range services.BookmarkSearcher.Search(candidates, queryArg(args)) {
		filter.Add(scriptfilter.Item{
			Title:    sb.Bookmark.Name,
			Subtitle: sb.Bookmark.URL,
			Arg:      sb.Bookmark.URL,
			Valid:    true,
			Mods: map[string]scriptfilter.Mod{
				"cmd": {Valid: true, Arg: sb.Bookmark.URL, Subtitle: "Copy URL to clipboard"},
				"alt": {Valid: true, Arg: sb.Bookmark.Name, Subtitle: "Copy bookmark name to clipboard"},
			},
		})
	}
	if filter.Empty() {
		filter.AddPlaceholder("No bookmarks found", "Try a different search term")
	}
	return filter.Write(cmd.OutOrStdout())
}

// bookmarkFailure maps a source error to the placeholder shown in Alfred,
// distinguishing a missing source from a corrupted one.
func bookmarkFailure(err error) (title, subtitle string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "No Chrome bookmarks found", "Chrome bookmarks not accessible"
	case errors.Is(err, domain.ErrCorrupted):
		return "Chrome bookmarks unreadable", "The Bookmarks file is not valid JSON"
	}
	return "Error loading bookmarks", err.Error()
}
