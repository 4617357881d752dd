// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pdiddy/search-tools/internal/google"
	"github.com/pdiddy/search-tools/internal/youtube"
)

// Column colors for result tables, as ANSI codes.
const (
	colorTitle   = lipgloss.Color("5") // magenta
	colorChannel = lipgloss.Color("2") // green
	colorLink    = lipgloss.Color("4") // blue
)

// Google prints a Custom Search response.
func (r *Renderer) Google(resp *google.Response) error {
	if ok, err := r.structured(resp); ok {
		return err
	}
	if len(resp.Items) == 0 {
		return r.noResults()
	}

	if r.format == FormatTable {
		rows := make([][]string, 0, len(resp.Items))
		for _, it := range resp.Items {
			rows = append(rows, []string{it.Title, it.Link})
		}
		return r.table([]string{"Title", "Link"}, []lipgloss.Color{colorTitle, colorLink}, rows)
	}

	var b strings.Builder
	for _, it := range resp.Items {
		fmt.Fprintf(&b, "Title: %s\n", it.Title)
		fmt.Fprintf(&b, "Link: %s\n", it.Link)
		fmt.Fprintf(&b, "Snippet: %s\n", strings.TrimSpace(it.Snippet))
		b.WriteByte('\n')
	}
	_, err := fmt.Fprint(r.w, b.String())
	return err
}

// YouTube prints a search.list response.
func (r *Renderer) YouTube(resp *youtube.Response) error {
	if ok, err := r.structured(resp); ok {
		return err
	}
	if len(resp.Items) == 0 {
		return r.noResults()
	}

	if r.format == FormatTable {
		rows := make([][]string, 0, len(resp.Items))
		for _, it := range resp.Items {
			var title, channel string
			if it.Snippet != nil {
				title, channel = it.Snippet.Title, it.Snippet.ChannelTitle
			}
			rows = append(rows, []string{title, channel, it.ID.URL()})
		}
		return r.table([]string{"Title", "Channel", "Link"},
			[]lipgloss.Color{colorTitle, colorChannel, colorLink}, rows)
	}

	var b strings.Builder
	for _, it := range resp.Items {
		if s := it.Snippet; s != nil {
			fmt.Fprintf(&b, "Title: %s\n", s.Title)
			fmt.Fprintf(&b, "Description: %s\n", s.Description)
			fmt.Fprintf(&b, "Published at: %s\n", s.PublishedAt)
			fmt.Fprintf(&b, "Channel title: %s\n", s.ChannelTitle)
		}
		kind, _ := it.ID.Ref()
		switch kind {
		case youtube.RefVideo:
			fmt.Fprintf(&b, "Video url: %s\n", it.ID.URL())
		case youtube.RefChannel:
			fmt.Fprintf(&b, "Channel url: %s\n", it.ID.URL())
		case youtube.RefPlaylist:
			fmt.Fprintf(&b, "Playlist url: %s\n", it.ID.URL())
		}
		b.WriteByte('\n')
	}
	_, err := fmt.Fprint(r.w, b.String())
	return err
}

// table prints a bordered table. colors gives the foreground of each
// column, "" for none; header cells are bold.
func (r *Renderer) table(headers []string, colors []lipgloss.Color, rows [][]string) error {
	header := r.styles.NewStyle().Bold(true).Padding(0, 1)
	cell := r.styles.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.NewStyle().Faint(true)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col < len(colors) && colors[col] != "" {
				return cell.Foreground(colors[col])
			}
			return cell
		})

	_, err := fmt.Fprintln(r.w, t.Render())
	return err
}
