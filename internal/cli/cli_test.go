package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guardpatrol/internal/cli"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(context.Background(), []string{"map.txt"}, &out)
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "map.txt", cfg.InputPath)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Render)
}

func TestParse_Flags(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(context.Background(),
		[]string{"-i", "-", "-workers", "4", "-render", "-log-level", "DEBUG", "-log-format", "json"}, &out)
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "-", cfg.InputPath)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Render)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_UsageExits(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(context.Background(), nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")

	out.Reset()
	_, exit, err = cli.Parse(context.Background(), []string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string][]string{
		"unknownFlag": {"-speed", "3", "map.txt"},
		"logFormat":   {"-log-format", "xml", "map.txt"},
		"logLevel":    {"-log-level", "trace", "map.txt"},
		"workers":     {"-workers", "-1", "map.txt"},
		"configFile":  {"-config", "/nonexistent/run.hcl", "map.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := cli.Parse(context.Background(), args, &out)
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.hcl")
	src := `
input   = "map.txt"
workers = 6
render  = true
log {
  level = "warn"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	var out bytes.Buffer
	cfg, _, err := cli.Parse(context.Background(), []string{"-config", path}, &out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "map.txt"), cfg.InputPath)
	assert.Equal(t, 6, cfg.Workers)
	assert.True(t, cfg.Render)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)

	// explicit flags and the positional argument win over the file
	cfg, _, err = cli.Parse(context.Background(), []string{"-config", path, "-workers", "2", "-log-level", "error", "other.txt"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "other.txt", cfg.InputPath)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "error", cfg.LogLevel)
}
