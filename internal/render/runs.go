// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/search-tools/internal/history"
)

// Runs prints recorded runs from the history index.
func (r *Renderer) Runs(runs []history.Run) error {
	if runs == nil {
		runs = []history.Run{}
	}
	if ok, err := r.structured(runs); ok {
		return err
	}
	if len(runs) == 0 {
		return r.noResults()
	}

	if r.format == FormatTable {
		rows := make([][]string, 0, len(runs))
		for _, run := range runs {
			rows = append(rows, []string{
				strconv.FormatInt(run.ID, 10),
				run.Created.Local().Format(time.DateTime),
				run.Source,
				run.Query,
				strconv.Itoa(run.Items),
			})
		}
		return r.table([]string{"ID", "Time", "Source", "Query", "Items"},
			[]lipgloss.Color{"", "", colorChannel, colorTitle, ""}, rows)
	}

	var b strings.Builder
	for _, run := range runs {
		fmt.Fprintf(&b, "%d  %s  %-7s  %3d  %s\n",
			run.ID, run.Created.Local().Format(time.DateTime), run.Source, run.Items, run.Query)
	}
	_, err := fmt.Fprint(r.w, b.String())
	return err
}
