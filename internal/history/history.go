// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records raw API responses on disk.
//
// Each day gets one file, <dir>/<YYYY-MM-DD>.json, holding a JSON array of
// responses in the order they were received. Entries already in a file are
// never rewritten: an append copies their bytes through unchanged. An
// index database, <dir>/index.db, lists every recorded run.
//
// There is no locking; concurrent writers to the same directory are not
// supported.
package history

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrNotArray is returned by Read for a file that does not hold a JSON array.
var ErrNotArray = errors.New("not a JSON array")

// dateLayout names the daily files.
const dateLayout = "2006-01-02"

// fileMode applies to history files.
const fileMode = 0o644

// entryFormat indents an entry for the file. Nested lines carry the two
// spaces the array adds in front of each entry.
var entryFormat = &pretty.Options{Width: 80, Prefix: "  ", Indent: "  "}

// FileFor returns the history file for the local date of t.
func FileFor(dir string, t time.Time) string {
	return filepath.Join(dir, t.Format(dateLayout)+".json")
}

// Read returns the entries of path. A missing or empty file is an empty
// history. A file that is not a JSON array is an error.
func Read(path string) ([]jsontext.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history file %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var entries []jsontext.Value
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("history file %s: %w: %w", path, ErrNotArray, err)
	}
	return entries, nil
}

// Append adds raw to the history file for now under dir, creating dir and
// the file as needed. It returns the file path and the entry count after
// the append. A file that is not a JSON array is moved aside to
// <file>.corrupt-<unix seconds> and a new history is started.
func Append(dir string, now time.Time, raw []byte, log zerolog.Logger) (string, int, error) {
	if !gjson.ValidBytes(raw) {
		return "", 0, fmt.Errorf("history entry is not valid JSON")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("creating history directory: %w", err)
	}

	path := FileFor(dir, now)
	entries, err := Read(path)
	if errors.Is(err, ErrNotArray) {
		aside := fmt.Sprintf("%s.corrupt-%d", path, now.Unix())
		if rerr := os.Rename(path, aside); rerr != nil {
			return "", 0, fmt.Errorf("moving corrupt history file: %w", rerr)
		}
		log.Warn().Err(err).Str("moved_to", aside).Msg("starting a new history file")
		entries, err = nil, nil
	}
	if err != nil {
		return "", 0, err
	}
	entries = append(entries, jsontext.Value(formatEntry(raw)))

	if err := write(path, entries); err != nil {
		return "", 0, err
	}
	return path, len(entries), nil
}

func formatEntry(raw []byte) []byte {
	return bytes.TrimSpace(pretty.PrettyOptions(raw, entryFormat))
}

// write replaces path with entries through a temporary file, so a failed
// write leaves the previous history in place.
func write(path string, entries []jsontext.Value) error {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, e := range entries {
		buf.WriteString("  ")
		buf.Write(e)
		if i < len(entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")

	tmp, err := os.CreateTemp(filepath.Dir(path), ".history-*.json")
	if err != nil {
		return fmt.Errorf("creating temporary history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("writing history file: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing history file: %w", err)
	}
	return nil
}
