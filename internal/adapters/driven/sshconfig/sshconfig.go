// Package sshconfig parses host candidates from an OpenSSH client config
// file. It implements the driven.HostSource interface.
//
// Parsing is deliberately forgiving: blank lines, comments and malformed
// lines are skipped per-line, so one bad entry never hides the rest of
// the file.
package sshconfig

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alfredtools/launchkit/internal/core/domain"
	"github.com/alfredtools/launchkit/internal/core/ports/driven"
	"github.com/alfredtools/launchkit/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.HostSource = (*Source)(nil)

// Source reads hosts from one ssh_config file.
type Source struct {
	path string
}

// New returns a source reading the given config file. An empty path selects
// ~/.ssh/config.
func New(path string) *Source {
	return &Source{path: path}
}

// Hosts returns every Host stanza of the config in file order. A missing
// config wraps domain.ErrNotFound.
func (s *Source) Hosts(_ context.Context) ([]domain.Host, error) {
	path := s.path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".ssh", "config")
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("ssh config %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open ssh config: %w", err)
	}
	defer f.Close()

	hosts := parse(f)
	logger.Debug("SSH hosts loaded: %d", len(hosts))
	return hosts, nil
}

// parse walks the config line by line. A Host directive opens a new stanza;
// HostName, Port and User fill the current one. Directives outside a stanza
// and lines without a value are dropped.
func parse(r io.Reader) []domain.Host {
	var hosts []domain.Host
	var current *domain.Host

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			logger.Debug("Skipping malformed ssh config line: %q", line)
			continue
		}
		key := fields[0]
		value := strings.Join(fields[1:], " ")

		if strings.EqualFold(key, "Host") {
			if current != nil {
				hosts = append(hosts, *current)
			}
			current = &domain.Host{Alias: value}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.EqualFold(key, "HostName"):
			current.Hostname = value
		case strings.EqualFold(key, "Port"):
			current.Port = value
		case strings.EqualFold(key, "User"):
			current.User = value
		}
	}
	if current != nil {
		hosts = append(hosts, *current)
	}
	return hosts
}
