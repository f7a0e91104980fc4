package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHost_Addr(t *testing.T) {
	tests := []struct {
		name string
		host Host
		want string
	}{
		{"full", Host{Alias: "db", Hostname: "10.0.0.5", Port: "2222"}, "10.0.0.5:2222"},
		{"default port", Host{Alias: "db", Hostname: "10.0.0.5"}, "10.0.0.5:22"},
		{"no hostname", Host{Alias: "db"}, "N/A:22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.host.Addr())
		})
	}
}

func TestHost_SSHCommand(t *testing.T) {
	h := Host{Alias: "prod-db", Hostname: "10.0.0.5", User: "deploy"}
	assert.Equal(t, "ssh prod-db", h.SSHCommand())
}

func TestScoredHost_FieldPromotion(t *testing.T) {
	sh := ScoredHost{
		Host:  Host{Alias: "prod-db", Hostname: "10.0.0.5"},
		Score: 0.57,
	}

	// The host fields and methods read directly off the scored wrapper.
	assert.Equal(t, "prod-db", sh.Alias)
	assert.Equal(t, "10.0.0.5:22", sh.Addr())
	assert.Equal(t, 0.57, sh.Score)
}
