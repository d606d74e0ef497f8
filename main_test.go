package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Xunop/amana-bookstore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		configFile = ""
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, config.Version+"\n", execute(t, "version"))
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("BOOKSTORE_LOG_FILE", filepath.Join(dir, "bookstore.log"))

	out := execute(t, "init")
	assert.Equal(t, "Created collection books\nCreated collection reviews\n", out)

	for _, name := range []string{"books.json", "reviews.json"} {
		data, err := os.ReadFile(filepath.Join(dir, "data", name))
		require.NoError(t, err)
		assert.Contains(t, string(data), "[]")
	}

	assert.Equal(t, "All collections already exist\n", execute(t, "init"))
}

func TestInitCommandWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	file := filepath.Join(dir, "bookstore.toml")
	content := `
log_file = "app.log"
storage_driver = "sqlite"
data = "catalog"
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	out := execute(t, "init", "--config", file)
	assert.Equal(t, "Created collection books\nCreated collection reviews\n", out)

	_, err := os.Stat(filepath.Join(dir, "catalog", "bookstore.db"))
	assert.NoError(t, err)
}
