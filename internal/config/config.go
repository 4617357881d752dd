// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config builds the process-wide types.Config from a config file,
// environment variables, and the .secrets/ directory. It runs once at
// startup; clients receive the resulting value and never read the
// environment themselves.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	apierrors "github.com/pdiddy/search-tools/internal/errors"
	"github.com/pdiddy/search-tools/internal/secrets"
	"github.com/pdiddy/search-tools/pkg/types"
)

// Configuration keys.
const (
	KeyTimeout        = "http.timeout"
	KeyUserAgent      = "http.user_agent"
	KeyGoogleAPIKey   = "google.api_key"
	KeyGoogleEngineID = "google.engine_id"
	KeyGoogleEndpoint = "google.endpoint"
	KeyYouTubeAPIKey  = "youtube.api_key"
	KeyYouTubeEndpt   = "youtube.endpoint"
	KeyGeminiAPIKey   = "gemini.api_key"
	KeyGeminiBaseURL  = "gemini.base_url"
	KeyGeminiModel    = "gemini.model"
	KeyHistoryDir     = "history.dir"
)

// Environment variables carrying credentials.
const (
	EnvGoogleAPIKey   = "GOOGLE_SEARCH_API_KEY"
	EnvGoogleEngineID = "GOOGLE_SEARCH_ENGINE_ID"
	EnvYouTubeAPIKey  = "YOUTUBE_API_KEY"
	EnvGeminiAPIKey   = "GOOGLE_GENERATIVE_API_KEY"
	EnvHistoryDir     = "SEARCH_HISTORY_DIR"
	EnvYouTubeFolder  = "YOUTUBE_FOLDER"
)

// Defaults.
const (
	DefaultGoogleEndpoint  = "https://customsearch.googleapis.com/customsearch/v1"
	DefaultYouTubeEndpoint = "https://youtube.googleapis.com/youtube/v3/search"
	DefaultGeminiModel     = "gemini-2.0-flash"
	DefaultTimeout         = 30 * time.Second
	DefaultUserAgent       = "search-tools/0.1"
)

// configName is the config file base name searched in . and
// ~/.config/search-tools.
const configName = "search-tools"

// Bind registers defaults and environment bindings on v.
func Bind(v *viper.Viper) {
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyUserAgent, DefaultUserAgent)
	v.SetDefault(KeyGoogleEndpoint, DefaultGoogleEndpoint)
	v.SetDefault(KeyYouTubeEndpt, DefaultYouTubeEndpoint)
	v.SetDefault(KeyGeminiModel, DefaultGeminiModel)

	// BindEnv only errors when called without a key.
	_ = v.BindEnv(KeyGoogleAPIKey, EnvGoogleAPIKey)
	_ = v.BindEnv(KeyGoogleEngineID, EnvGoogleEngineID)
	_ = v.BindEnv(KeyYouTubeAPIKey, EnvYouTubeAPIKey)
	_ = v.BindEnv(KeyGeminiAPIKey, EnvGeminiAPIKey)
	_ = v.BindEnv(KeyHistoryDir, EnvHistoryDir, EnvYouTubeFolder)

	v.SetEnvPrefix("SEARCH_TOOLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile loads cfgFile, or searches the default locations when cfgFile is
// empty. It returns the path used, or "" when no file was found. A missing
// file in the default locations is not an error; an explicit cfgFile that
// cannot be read is.
func ReadFile(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load assembles a Config from v, falling back to s for credentials that v
// does not supply.
func Load(v *viper.Viper, s secrets.Secrets) types.Config {
	pick := func(key, secret string) string {
		if val := v.GetString(key); val != "" {
			return val
		}
		return s.Get(secret)
	}

	return types.Config{
		HTTP: types.HTTPConfig{
			Timeout:   v.GetDuration(KeyTimeout),
			UserAgent: v.GetString(KeyUserAgent),
		},
		Google: types.GoogleConfig{
			APIKey:   pick(KeyGoogleAPIKey, secrets.GoogleSearchAPIKey),
			EngineID: pick(KeyGoogleEngineID, secrets.GoogleSearchEngineID),
			Endpoint: v.GetString(KeyGoogleEndpoint),
		},
		YouTube: types.YouTubeConfig{
			APIKey:   pick(KeyYouTubeAPIKey, secrets.YouTubeAPIKey),
			Endpoint: v.GetString(KeyYouTubeEndpt),
		},
		Gemini: types.GeminiConfig{
			APIKey:  pick(KeyGeminiAPIKey, secrets.GoogleGenerativeAPIKey),
			BaseURL: v.GetString(KeyGeminiBaseURL),
			Model:   v.GetString(KeyGeminiModel),
		},
		History: types.HistoryConfig{
			Dir: v.GetString(KeyHistoryDir),
		},
	}
}

// RequireGoogle checks the credentials the Custom Search API needs. A
// non-empty cxOverride satisfies the engine identifier.
func RequireGoogle(cfg types.GoogleConfig, cxOverride string) error {
	if cfg.APIKey == "" {
		return apierrors.NewConfigError(KeyGoogleAPIKey, EnvGoogleAPIKey)
	}
	if cfg.EngineID == "" && cxOverride == "" {
		return apierrors.NewConfigError(KeyGoogleEngineID, EnvGoogleEngineID)
	}
	return nil
}

// RequireYouTube checks the credentials the YouTube search API needs.
func RequireYouTube(cfg types.YouTubeConfig) error {
	if cfg.APIKey == "" {
		return apierrors.NewConfigError(KeyYouTubeAPIKey, EnvYouTubeAPIKey)
	}
	return nil
}

// RequireGemini checks the credentials the generative-language API needs.
func RequireGemini(cfg types.GeminiConfig) error {
	if cfg.APIKey == "" {
		return apierrors.NewConfigError(KeyGeminiAPIKey, EnvGeminiAPIKey)
	}
	if cfg.Model == "" {
		return apierrors.NewConfigError(KeyGeminiModel, "")
	}
	return nil
}
