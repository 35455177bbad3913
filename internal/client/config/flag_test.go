package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "https://portal.yeng.ht/api", "-t", "10", "-d", "/tmp/yeng.db"}, expectPanic: false,
			expected: &Config{APIBaseURL: "https://portal.yeng.ht/api", RequestTimeout: 10 * time.Second, StorageDSN: "/tmp/yeng.db"}},
		{name: "Test2 verbose", args: []string{"cmd", "-v"}, expectPanic: false,
			expected: &Config{Verbose: true}},
		{name: "Test3 incorrect timeout", args: []string{"cmd", "-a", "https://portal.yeng.ht/api", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
