package sshconfig

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredtools/launchkit/internal/core/domain"
)

const sampleConfig = `# Personal hosts

Host prod-db
    HostName 10.0.0.5
    Port 2222
    User deploy

Host prod-web
    hostname 10.0.0.6

# Grouped aliases share one stanza.
Host web1 web2
    HostName lb.internal

Compression
Host bare
`

func TestSource_Hosts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	got, err := New(path).Hosts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Host{
		{Alias: "prod-db", Hostname: "10.0.0.5", Port: "2222", User: "deploy"},
		{Alias: "prod-web", Hostname: "10.0.0.6"},
		{Alias: "web1 web2", Hostname: "lb.internal"},
		{Alias: "bare"},
	}, got)
}

func TestSource_HostsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	_, err := New(path).Hosts(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParse_DirectivesBeforeFirstHost(t *testing.T) {
	got := parse(strings.NewReader("HostName orphan.internal\nHost real\n"))

	assert.Equal(t, []domain.Host{{Alias: "real"}}, got)
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, parse(strings.NewReader("")))
	assert.Empty(t, parse(strings.NewReader("# only comments\n\n")))
}
