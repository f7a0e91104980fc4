package domain

// Bookmark is a single browser bookmark candidate.
type Bookmark struct {
	// Name is the bookmark title as stored by the browser.
	Name string

	// URL is the bookmarked address and the action value for the launcher.
	URL string
}

// ScoredBookmark pairs a bookmark with its score for one ranking pass.
// A zero score is only ever visible in pass-through mode; scored passes
// drop zero-score bookmarks before ranking.
type ScoredBookmark struct {
	Bookmark
	Score int
}
