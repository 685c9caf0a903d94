package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/devfolio/internal/config"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PORT", "")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	cfgPath := filepath.Join(t.TempDir(), "portfolio.yml")
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPostsCmd(t *testing.T) {
	out, err := runCmd(t, "posts", "--q", "docker")
	require.NoError(t, err)
	assert.Contains(t, out, "docker")
	assert.Contains(t, out, "Found 2 articles")

	out, err = runCmd(t, "posts", "--tag", "Containers")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 article\n")
}

func TestPostsCmd_Tags(t *testing.T) {
	out, err := runCmd(t, "posts", "--tags")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Java", lines[0])
}

func TestRenderCmd(t *testing.T) {
	out, err := runCmd(t, "render", "sql")
	require.NoError(t, err)
	assert.Contains(t, out, `<h1 id="sql-essentials"`)

	_, err = runCmd(t, "render", "nope")
	assert.ErrorContains(t, err, `post "nope" not found`)
}

func TestCycleCmd(t *testing.T) {
	out, err := runCmd(t, "cycle", "--frames", "4", "ab")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `0 typing   ""`, lines[0])
	assert.Equal(t, `0 typing   "ab"`, lines[2])
	assert.Equal(t, `0 deleting "a"`, lines[3])
}

func TestCycleCmd_ZeroFrames(t *testing.T) {
	out, err := runCmd(t, "cycle", "--frames", "0", "ab")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestConfigCmd_Print(t *testing.T) {
	t.Setenv("PORTFOLIO_CAROUSEL__INTERVAL", "3s")
	out, err := runCmd(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "server:")
	assert.Contains(t, out, "interval: 3s")
}

func TestConfigCmd_Write(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER__MODE", "debug")
	path := filepath.Join(t.TempDir(), "effective.yml")
	out, err := runCmd(t, "config", "--write", path)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+"\n", out)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", loaded.Server.Mode)
	assert.Equal(t, config.DefaultConfig().Typewriter, loaded.Typewriter)
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER__MODE", "loud")
	_, err := runCmd(t, "posts")
	assert.Error(t, err)
}
