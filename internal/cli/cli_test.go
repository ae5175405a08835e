package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, shouldExit, err := Parse([]string{"plan.json"}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "plan.json", cfg.PlanPath)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Empty(t, cfg.SchemaPath)
	assert.Empty(t, cfg.OverridesPath)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, shouldExit, err := Parse([]string{
		"-o", "sheets",
		"-s", "schema.json",
		"-overrides", "custom.hcl",
		"-f", "markdown",
		"-log-format", "json",
		"-log-level", "debug",
		"-workers", "2",
		"plans/",
	}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "plans/", cfg.PlanPath)
	assert.Equal(t, "sheets", cfg.OutputDir)
	assert.Equal(t, "schema.json", cfg.SchemaPath)
	assert.Equal(t, "custom.hcl", cfg.OverridesPath)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2, cfg.WorkerCount)
}

func TestParse_Version(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, shouldExit, err := Parse([]string{"-version"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "tfsheet "+Version)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, shouldExit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, shouldExit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "PLAN_PATH")
}

func TestParse_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-bogus", "plan.json"}, "flag provided but not defined"},
		{"bad format", []string{"-f", "pdf", "plan.json"}, "invalid format"},
		{"bad log-format", []string{"-log-format", "xml", "plan.json"}, "invalid log-format"},
		{"bad log-level", []string{"-log-level", "trace", "plan.json"}, "invalid log-level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}

func TestParse_FormatCaseInsensitive(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, _, err := Parse([]string{"-f", "MD", "plan.json"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "md", cfg.Format)
}
