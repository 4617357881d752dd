// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration shared by the search tools. A
// Config is built once at process start and passed to whichever client
// needs it; nothing reads the environment after that.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by clients that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "search-tools/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GoogleConfig holds settings for the Custom Search JSON API.
type GoogleConfig struct {
	// APIKey authenticates requests (GOOGLE_SEARCH_API_KEY).
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// EngineID is the programmable search engine identifier, sent as cx
	// (GOOGLE_SEARCH_ENGINE_ID).
	EngineID string `json:"engine_id,omitempty" yaml:"engine_id,omitempty"`

	// Endpoint is the search URL; overridable for proxies and tests.
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// YouTubeConfig holds settings for the YouTube Data API search endpoint.
type YouTubeConfig struct {
	// APIKey authenticates requests (YOUTUBE_API_KEY).
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Endpoint is the search URL; overridable for proxies and tests.
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// GeminiConfig holds settings for the generative-language endpoint.
type GeminiConfig struct {
	// APIKey authenticates requests (GOOGLE_GENERATIVE_API_KEY).
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the SDK's default host when set.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Model is the default model (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model"`
}

// HistoryConfig controls persistence of raw responses.
type HistoryConfig struct {
	// Dir is the directory holding dated history files. Empty disables history.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Config groups every setting for the search tools.
type Config struct {
	HTTP    HTTPConfig    `json:"http" yaml:"http"`
	Google  GoogleConfig  `json:"google" yaml:"google"`
	YouTube YouTubeConfig `json:"youtube" yaml:"youtube"`
	Gemini  GeminiConfig  `json:"gemini" yaml:"gemini"`
	History HistoryConfig `json:"history" yaml:"history"`
}
