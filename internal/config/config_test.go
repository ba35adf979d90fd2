package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/csvq/internal/query"
)

var operations = []string{"where", "aggregate"}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("csvq", pflag.ContinueOnError)
	fs.String(KeyFile, "", "")
	fs.String(KeyFormat, "table", "")
	fs.String(KeyConfig, "", "")
	fs.String(KeyLogLevel, "WARN", "")
	fs.String(KeyLogFormat, "text", "")
	for _, name := range operations {
		fs.String(name, "", "")
	}
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Flags(t *testing.T) {
	fs := newFlagSet(t, "--file", "phones.csv", "--where", "brand=xiaomi", "--format", "csv")

	cfg, err := Load(fs, operations)
	require.NoError(t, err)

	assert.Equal(t, "phones.csv", cfg.File)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, query.CommandRequest{"where": "brand=xiaomi"}, cfg.Commands)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CSVQ_FILE", "env.csv")
	t.Setenv("CSVQ_AGGREGATE", "rating=avg")
	t.Setenv("CSVQ_LOG_LEVEL", "DEBUG")

	cfg, err := Load(newFlagSet(t), operations)
	require.NoError(t, err)

	assert.Equal(t, "env.csv", cfg.File)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, query.CommandRequest{"aggregate": "rating=avg"}, cfg.Commands)
}

func TestLoad_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("CSVQ_FILE", "env.csv")

	cfg, err := Load(newFlagSet(t, "--file", "flag.csv"), operations)
	require.NoError(t, err)
	assert.Equal(t, "flag.csv", cfg.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csvq.yaml")
	content := "file: from-config.csv\nformat: json\nwhere: price>300\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(newFlagSet(t, "--config", path, "--format", "table"), operations)
	require.NoError(t, err)

	assert.Equal(t, "from-config.csv", cfg.File)
	assert.Equal(t, "table", cfg.Format, "flag must win over config file")
	assert.Equal(t, query.CommandRequest{"where": "price>300"}, cfg.Commands)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(newFlagSet(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")), operations)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read config file")
}
