// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render prints decoded responses. Renderers only read the values
// they are given.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"go.yaml.in/yaml/v3"
	"golang.org/x/term"

	"github.com/pdiddy/search-tools/internal/enum"
)

// NoResults is printed when a response has no items.
const NoResults = "No results found."

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

// Format selects the output shape.
type Format int

const (
	FormatText Format = iota
	FormatTable
	FormatJSON
	FormatYAML
)

var Formats = enum.New("format",
	enum.Choice[Format]{Value: FormatText, Name: "text", Literal: "text"},
	enum.Choice[Format]{Value: FormatTable, Name: "table", Literal: "table"},
	enum.Choice[Format]{Value: FormatJSON, Name: "json", Literal: "json"},
	enum.Choice[Format]{Value: FormatYAML, Name: "yaml", Literal: "yaml"},
)

func (f Format) String() string { return Formats.Literal(f) }

// Renderer writes one response to w.
type Renderer struct {
	w      io.Writer
	format Format
	tty    bool
	width  int
	styles *lipgloss.Renderer
}

// New returns a Renderer for w. Color and Markdown styling are used only
// when w is a terminal.
func New(w io.Writer, format Format) *Renderer {
	r := &Renderer{
		w:      w,
		format: format,
		width:  defaultWidth,
		styles: lipgloss.NewRenderer(w),
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.tty = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			r.width = width
		}
	}
	return r
}

// Format returns the output format.
func (r *Renderer) Format() Format { return r.format }

// structured writes v as JSON or YAML and reports whether the format was
// one of those.
func (r *Renderer) structured(v any) (bool, error) {
	switch r.format {
	case FormatJSON:
		return true, writeJSON(r.w, v)
	case FormatYAML:
		return true, writeYAML(r.w, v)
	}
	return false, nil
}

func (r *Renderer) noResults() error {
	_, err := fmt.Fprintln(r.w, NoResults)
	return err
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// writeYAML encodes v through its JSON form so the keys match the upstream
// field names.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles the JSON input carries.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
