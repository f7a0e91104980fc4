// Package scriptfilter builds Alfred Script Filter JSON output.
//
// The filter is the engine's only primary output: a list of display items,
// each carrying the literal action value (URL, path, shell command) plus
// optional modifier-key actions. A filter is never emitted empty; callers
// that end up with no actionable rows get a single invalid placeholder so
// the launcher always has something to show.
package scriptfilter

import (
	"encoding/json"
	"io"
)

// Icon configures the icon shown for an item.
type Icon struct {
	Type string `json:"type,omitempty"`
	Path string `json:"path,omitempty"`
}

// Mod describes the behaviour of one modifier key held on an item.
type Mod struct {
	Valid    bool   `json:"valid"`
	Arg      string `json:"arg,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

// Text carries copy and large-type text for an item.
type Text struct {
	Copy      string `json:"copy,omitempty"`
	LargeType string `json:"largetype,omitempty"`
}

// Item is a single Script Filter row.
type Item struct {
	UID          string         `json:"uid,omitempty"`
	Title        string         `json:"title"`
	Subtitle     string         `json:"subtitle,omitempty"`
	Arg          string         `json:"arg,omitempty"`
	Icon         *Icon          `json:"icon,omitempty"`
	Valid        bool           `json:"valid"`
	Match        string         `json:"match,omitempty"`
	Autocomplete string         `json:"autocomplete,omitempty"`
	Type         string         `json:"type,omitempty"`
	Mods         map[string]Mod `json:"mods,omitempty"`
	Text         *Text          `json:"text,omitempty"`
	QuicklookURL string         `json:"quicklookurl,omitempty"`
}

// Filter is the top-level Script Filter document.
type Filter struct {
	Items         []Item            `json:"items"`
	Variables     map[string]string `json:"variables,omitempty"`
	Rerun         float64           `json:"rerun,omitempty"`
	SkipKnowledge bool              `json:"skipknowledge,omitempty"`
}

// New returns an empty filter.
func New() *Filter {
	return &Filter{Items: []Item{}}
}

// Add appends items to the filter.
func (f *Filter) Add(items ...Item) {
	f.Items = append(f.Items, items...)
}

// AddPlaceholder appends a single non-actionable row. Used whenever a
// command has nothing actionable to show: no candidates, no matches, or a
// broken source.
func (f *Filter) AddPlaceholder(title, subtitle string) {
	f.Add(Item{Title: title, Subtitle: subtitle, Valid: false})
}

// Empty reports whether the filter holds no items yet.
func (f *Filter) Empty() bool {
	return len(f.Items) == 0
}

// Write renders the filter as JSON on w. An empty filter is padded with a
// generic placeholder first so the launcher never receives an empty list.
func (f *Filter) Write(w io.Writer) error {
	if f.Empty() {
		f.AddPlaceholder("No results found", "Try a different search term")
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(f)
}
