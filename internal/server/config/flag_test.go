package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		start    Config
		expected Config
		wantErr  bool
	}{
		{
			name:  "all flags",
			args:  []string{"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "15", "-l", "debug"},
			start: Config{AccessTokenValidityDuration: time.Hour},
			expected: Config{
				EndpointAddrHTTP:            "127.0.0.1:9090",
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 15 * time.Minute,
				LogLevel:                    "debug",
			},
		},
		{
			name:     "ttl untouched when -t absent",
			args:     []string{"-s", "k"},
			start:    Config{AccessTokenValidityDuration: 90 * time.Second},
			expected: Config{SecretKey: "k", AccessTokenValidityDuration: 90 * time.Second},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-x", "1", "-s", "k"},
			start:    Config{},
			expected: Config{SecretKey: "k"},
		},
		{
			name:    "bad int",
			args:    []string{"-t", "soon"},
			start:   Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.start
			err := parseFlags(&cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
