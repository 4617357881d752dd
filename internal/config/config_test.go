// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/pdiddy/search-tools/internal/errors"
	"github.com/pdiddy/search-tools/internal/secrets"
	"github.com/pdiddy/search-tools/pkg/types"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvGoogleAPIKey, EnvGoogleEngineID, EnvYouTubeAPIKey, EnvGeminiAPIKey, EnvHistoryDir, EnvYouTubeFolder} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	v := viper.New()
	Bind(v)

	cfg := Load(v, secrets.Secrets{})
	assert.Equal(t, DefaultTimeout, cfg.HTTP.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.HTTP.UserAgent)
	assert.Equal(t, DefaultGoogleEndpoint, cfg.Google.Endpoint)
	assert.Equal(t, DefaultYouTubeEndpoint, cfg.YouTube.Endpoint)
	assert.Equal(t, DefaultGeminiModel, cfg.Gemini.Model)
	assert.Empty(t, cfg.Google.APIKey)
	assert.Empty(t, cfg.History.Dir)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvGoogleAPIKey, "g-key")
	t.Setenv(EnvGoogleEngineID, "engine")
	t.Setenv(EnvYouTubeAPIKey, "yt-key")
	t.Setenv(EnvGeminiAPIKey, "gem-key")
	t.Setenv(EnvYouTubeFolder, "/tmp/yt")

	v := viper.New()
	Bind(v)
	cfg := Load(v, secrets.Secrets{secrets.GoogleSearchAPIKey: "from-file"})

	assert.Equal(t, "g-key", cfg.Google.APIKey, "environment wins over secrets")
	assert.Equal(t, "engine", cfg.Google.EngineID)
	assert.Equal(t, "yt-key", cfg.YouTube.APIKey)
	assert.Equal(t, "gem-key", cfg.Gemini.APIKey)
	assert.Equal(t, "/tmp/yt", cfg.History.Dir)
}

func TestHistoryDirPrefersSearchHistoryDir(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHistoryDir, "/a")
	t.Setenv(EnvYouTubeFolder, "/b")

	v := viper.New()
	Bind(v)
	assert.Equal(t, "/a", Load(v, nil).History.Dir)
}

func TestLoadFallsBackToSecrets(t *testing.T) {
	clearEnv(t)
	v := viper.New()
	Bind(v)

	cfg := Load(v, secrets.Secrets{
		secrets.GoogleSearchAPIKey:     "file-g",
		secrets.GoogleSearchEngineID:   "file-cx",
		secrets.YouTubeAPIKey:          "file-yt",
		secrets.GoogleGenerativeAPIKey: "file-gem",
	})
	assert.Equal(t, "file-g", cfg.Google.APIKey)
	assert.Equal(t, "file-cx", cfg.Google.EngineID)
	assert.Equal(t, "file-yt", cfg.YouTube.APIKey)
	assert.Equal(t, "file-gem", cfg.Gemini.APIKey)
}

func TestReadFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  timeout: 5s
google:
  endpoint: http://localhost:9999/cs
  engine_id: from-config
gemini:
  model: gemini-1.5-pro
`), 0o644))

	v := viper.New()
	Bind(v)
	used, err := ReadFile(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg := Load(v, nil)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "http://localhost:9999/cs", cfg.Google.Endpoint)
	assert.Equal(t, "from-config", cfg.Google.EngineID)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
}

func TestReadFileMissingExplicitFile(t *testing.T) {
	v := viper.New()
	_, err := ReadFile(v, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRequire(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantKey string
	}{
		{"google ok", RequireGoogle(types.GoogleConfig{APIKey: "k", EngineID: "cx"}, ""), ""},
		{"google cx override", RequireGoogle(types.GoogleConfig{APIKey: "k"}, "flag-cx"), ""},
		{"google no key", RequireGoogle(types.GoogleConfig{EngineID: "cx"}, ""), KeyGoogleAPIKey},
		{"google no engine", RequireGoogle(types.GoogleConfig{APIKey: "k"}, ""), KeyGoogleEngineID},
		{"youtube ok", RequireYouTube(types.YouTubeConfig{APIKey: "k"}), ""},
		{"youtube no key", RequireYouTube(types.YouTubeConfig{}), KeyYouTubeAPIKey},
		{"gemini ok", RequireGemini(types.GeminiConfig{APIKey: "k", Model: "m"}), ""},
		{"gemini no key", RequireGemini(types.GeminiConfig{Model: "m"}), KeyGeminiAPIKey},
		{"gemini no model", RequireGemini(types.GeminiConfig{APIKey: "k"}), KeyGeminiModel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantKey == "" {
				assert.NoError(t, tt.err)
				return
			}
			require.ErrorIs(t, tt.err, apierrors.ErrMissingCredential)
			var ce *apierrors.ConfigError
			require.ErrorAs(t, tt.err, &ce)
			assert.Equal(t, tt.wantKey, ce.Key)
		})
	}
}
