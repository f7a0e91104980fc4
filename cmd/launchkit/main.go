// Command launchkit feeds Alfred Script Filters with ranked local
// candidates: Chrome bookmarks, zoxide project directories and SSH hosts.
package main

import (
	"os"
	"path/filepath"

	"github.com/alfredtools/launchkit/internal/adapters/driven/chrome"
	"github.com/alfredtools/launchkit/internal/adapters/driven/pinyin"
	"github.com/alfredtools/launchkit/internal/adapters/driven/sshconfig"
	"github.com/alfredtools/launchkit/internal/adapters/driven/zoxide"
	"github.com/alfredtools/launchkit/internal/adapters/driving/cli"
	"github.com/alfredtools/launchkit/internal/core/domain"
	"github.com/alfredtools/launchkit/internal/core/ports/driven"
	"github.com/alfredtools/launchkit/internal/core/services"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServices(wire())

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// wire selects the adapters once at process start. Capability switches
// (transliteration) pick between the real adapter and its stub here; the
// services only ever see the ports.
func wire() cli.Services {
	var translit driven.Transliterator = pinyin.New()
	if os.Getenv("LAUNCHKIT_NO_PINYIN") != "" {
		translit = pinyin.Noop{}
	}

	profile := os.Getenv("CHROME_PROFILE")
	if profile == "" {
		profile = "Profile 1"
	}

	return cli.Services{
		Bookmarks: chrome.New(profile),
		Hosts:     sshconfig.New(""),
		History:   zoxide.New(),

		BookmarkSearcher: services.NewBookmarkService(translit),
		PathRanker:       services.NewPathService(labelRules()),
		HostMatcher:      services.NewHostService(),
	}
}

// labelRules builds the cosmetic display rewrites for well-known roots,
// most specific first. Roots are overridable via the environment.
func labelRules() []domain.LabelRule {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	workspace := os.Getenv("LAUNCHKIT_WORKSPACE")
	if workspace == "" {
		workspace = filepath.Join(home, "Workspace")
	}
	company := os.Getenv("LAUNCHKIT_COMPANY")
	if company == "" {
		company = filepath.Join(workspace, "company")
	}

	return []domain.LabelRule{
		{Root: company, Label: "[company]"},
		{Root: workspace, Label: "[workspace]"},
		{Root: home, Label: "[home]"},
	}
}
