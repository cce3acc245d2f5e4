package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/flagx"
)

func defaults() *Config {
	return &Config{
		BaseURL:        "http://127.0.0.1:8000/api",
		PollInterval:   5 * time.Second,
		StorePath:      "session.db",
		RequestTimeout: 10 * time.Second,
		LogFormat:      "text",
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, cmp.Diff(defaults(), &c))
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv(flagx.ConfigEnvName, "")

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"base_url":      "http://json.example/api",
		"poll_interval": "30s",
		"log_format":    "json",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "http://flag.example/api"}

	cfg := LoadConfig()

	want := defaults()
	want.BaseURL = "http://flag.example/api"
	want.PollInterval = 30 * time.Second
	want.LogFormat = "json"
	assert.Empty(t, cmp.Diff(want, cfg))
}
