// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/search-tools/internal/gemini"
)

// Gemini prints a generateContent response. On a terminal the candidate
// text is rendered as Markdown; otherwise it is printed as is.
func (r *Renderer) Gemini(resp *gemini.Response) error {
	if ok, err := r.structured(resp); ok {
		return err
	}
	if strings.TrimSpace(resp.Text()) == "" {
		if resp.PromptBlocked != nil {
			_, err := fmt.Fprintf(r.w, "Prompt blocked: %s\n", *resp.PromptBlocked)
			return err
		}
		return r.noResults()
	}

	if r.format == FormatTable {
		rows := make([][]string, 0, len(resp.Candidates))
		for _, c := range resp.Candidates {
			finish := ""
			if c.FinishReason != nil {
				finish = *c.FinishReason
			}
			rows = append(rows, []string{strconv.Itoa(int(c.Index)), finish, c.Text})
		}
		return r.table([]string{"#", "Finish", "Text"},
			[]lipgloss.Color{"", "", colorTitle}, rows)
	}

	text := resp.Text()
	if r.tty {
		rendered, err := r.markdown(text)
		if err == nil {
			text = rendered
		}
	}
	_, err := fmt.Fprintln(r.w, strings.TrimRight(text, "\n"))
	return err
}

func (r *Renderer) markdown(text string) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return "", err
	}
	return tr.Render(text)
}
