// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text files.
// Each file holds one secret: the filename is the key name and the trimmed
// file contents are the value.
//
// Recognized key files: google-search-api-key, google-search-engine-id,
// youtube-api-key, google-generative-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Well-known secret file names.
const (
	GoogleSearchAPIKey     = "google-search-api-key"
	GoogleSearchEngineID   = "google-search-engine-id"
	YouTubeAPIKey          = "youtube-api-key"
	GoogleGenerativeAPIKey = "google-generative-api-key"
)

// Secrets maps secret names to values.
type Secrets map[string]string

// Get returns the named secret, or "" when absent.
func (s Secrets) Get(name string) string {
	return s[name]
}

// Names returns the loaded secret names in sorted order. Values are never
// exposed this way.
func (s Secrets) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Load reads every regular file in dir. A missing directory is not an error
// and yields an empty set. Dotfiles, subdirectories, and empty files are
// skipped; unreadable files are logged and skipped.
func Load(dir string, log zerolog.Logger) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(Secrets)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}
	return out, nil
}
