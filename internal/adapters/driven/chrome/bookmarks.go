// Package chrome reads bookmark candidates from Google Chrome's Bookmarks
// file. It implements the driven.BookmarkSource interface.
//
// Chrome keeps one Bookmarks JSON file per profile; the file location
// depends on the operating system. The reader flattens the bookmark tree
// of every root into (name, url) records and never follows the network.
package chrome

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/alfredtools/launchkit/internal/core/domain"
	"github.com/alfredtools/launchkit/internal/core/ports/driven"
	"github.com/alfredtools/launchkit/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.BookmarkSource = (*Source)(nil)

// bookmarkRoots are the top-level trees of the Bookmarks file, walked in
// this fixed order for deterministic candidate ordering.
var bookmarkRoots = []string{"bookmark_bar", "other", "synced"}

// Source reads bookmarks from one Chrome profile.
type Source struct {
	baseDir string
	profile string
}

// New returns a source for the given profile under the default Chrome data
// directory for this operating system. An empty or unknown profile falls
// back to the first profile that has a Bookmarks file.
func New(profile string) *Source {
	return &Source{profile: profile}
}

// NewAt is like New but reads profiles below dir. Used in tests and for
// Chromium-derivative installations.
func NewAt(dir, profile string) *Source {
	return &Source{baseDir: dir, profile: profile}
}

// Bookmarks returns every bookmark of the selected profile, flattened in
// tree order. A missing file wraps domain.ErrNotFound, an unparsable one
// domain.ErrCorrupted.
func (s *Source) Bookmarks(_ context.Context) ([]domain.Bookmark, error) {
	dir, err := s.dir()
	if err != nil {
		return nil, err
	}

	profile, err := s.selectProfile(dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Chrome profile selected: %s", profile)

	raw, err := os.ReadFile(filepath.Join(dir, profile, "Bookmarks"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("bookmarks file for profile %s: %w", profile, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read bookmarks file: %w", err)
	}

	var file bookmarksFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("bookmarks file for profile %s: %w", profile, domain.ErrCorrupted)
	}

	var bookmarks []domain.Bookmark
	for _, root := range bookmarkRoots {
		if node, ok := file.Roots[root]; ok {
			collect(node, &bookmarks)
		}
	}
	logger.Debug("Chrome bookmarks loaded: %d", len(bookmarks))
	return bookmarks, nil
}

// Profiles lists the profile directories that contain a Bookmarks file,
// sorted by name.
func (s *Source) Profiles() ([]string, error) {
	dir, err := s.dir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("chrome data directory: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read chrome data directory: %w", err)
	}

	var profiles []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, entry.Name(), "Bookmarks")); err == nil {
			profiles = append(profiles, entry.Name())
		}
	}
	sort.Strings(profiles)
	return profiles, nil
}

// selectProfile picks the configured profile when it exists, otherwise the
// first discovered one.
func (s *Source) selectProfile(dir string) (string, error) {
	profiles, err := s.Profiles()
	if err != nil {
		return "", err
	}
	if len(profiles) == 0 {
		return "", fmt.Errorf("chrome profiles in %s: %w", dir, domain.ErrNotFound)
	}
	logger.Debug("Chrome profiles found: %v", profiles)

	for _, p := range profiles {
		if p == s.profile {
			return p, nil
		}
	}
	if s.profile != "" {
		logger.Info("Profile %q not found, falling back to %q", s.profile, profiles[0])
	}
	return profiles[0], nil
}

func (s *Source) dir() (string, error) {
	if s.baseDir != "" {
		return s.baseDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome"), nil
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "Google", "Chrome", "User Data"), nil
	default:
		return filepath.Join(home, ".config", "google-chrome"), nil
	}
}

// bookmarkNode is one entry of Chrome's bookmark tree. Folders nest via
// Children; only "url" nodes become candidates. Records missing a field
// simply carry it empty.
type bookmarkNode struct {
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	Children []bookmarkNode `json:"children"`
}

type bookmarksFile struct {
	Roots map[string]bookmarkNode `json:"roots"`
}

func collect(node bookmarkNode, out *[]domain.Bookmark) {
	switch node.Type {
	case "url":
		*out = append(*out, domain.Bookmark{Name: node.Name, URL: node.URL})
	case "folder":
		for _, child := range node.Children {
			collect(child, out)
		}
	}
}
