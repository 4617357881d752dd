// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-tools/internal/config"
	"github.com/pdiddy/search-tools/internal/enum"
	apierrors "github.com/pdiddy/search-tools/internal/errors"
	"github.com/pdiddy/search-tools/internal/gemini"
	"github.com/pdiddy/search-tools/internal/google"
	"github.com/pdiddy/search-tools/internal/history"
)

// Source is a backend unified-search can dispatch to.
type Source int

const (
	SourceGemini Source = iota
	SourceGoogle
	SourceYouTube
)

var Sources = enum.New("source",
	enum.Choice[Source]{Value: SourceGemini, Name: "gemini", Literal: "gemini"},
	enum.Choice[Source]{Value: SourceGoogle, Name: "google", Literal: "google"},
	enum.Choice[Source]{Value: SourceYouTube, Name: "youtube", Literal: "youtube"},
)

func (s Source) String() string { return Sources.Literal(s) }

var errNoSource = errors.New("--source is required (" + strings.Join(Sources.Names(), ", ") + ")")

// NewUnifiedCmd returns the unified-search command.
func NewUnifiedCmd(a *App) *cobra.Command {
	var (
		source *Source
		q      string
		model  string
		recent int
	)

	cmd := &cobra.Command{
		Use:   "unified-search [query]",
		Short: "Search Gemini, Google or YouTube through one command",
		Long: `unified-search runs one query against the chosen source with that
source's default options. Use the dedicated search-* binaries for the full
set of parameters.

With --recent it lists the most recent runs recorded in the history index
instead of searching.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if recent > 0 {
				return a.runRecent(ctx, recent)
			}
			if source == nil {
				return errNoSource
			}
			return a.dispatch(ctx, *source, queryText(q, args), model)
		},
	}
	a.root(cmd)

	f := cmd.Flags()
	f.VarP(Sources.Var(&source), "source", "s", "backend to query ("+strings.Join(Sources.Names(), ", ")+")")
	f.StringVarP(&q, "query", "q", "", "query or prompt")
	f.StringVarP(&model, "model", "m", "", "model name, gemini only")
	f.IntVar(&recent, "recent", 0, "list the last N recorded runs instead of searching")

	return cmd
}

// dispatch runs query against source with that source's default options.
func (a *App) dispatch(ctx context.Context, source Source, query, model string) error {
	switch source {
	case SourceGemini:
		prompt, err := a.prompt(query, "")
		if err != nil {
			return err
		}
		return a.runGemini(ctx, prompt, gemini.Options{Model: model})
	case SourceGoogle:
		var opts google.Options
		if query != "" {
			opts.Q = &query
		}
		return a.runGoogle(ctx, opts)
	case SourceYouTube:
		opts := youtubeDefaults()
		if query != "" {
			opts.Q = &query
		}
		return a.runYouTube(ctx, opts)
	default:
		return fmt.Errorf("unsupported source %s", Sources.Name(source))
	}
}

func (a *App) runRecent(ctx context.Context, n int) error {
	dir := a.cfg.History.Dir
	if dir == "" {
		return apierrors.NewConfigError(config.KeyHistoryDir, config.EnvHistoryDir)
	}

	idx, err := history.OpenIndex(dir)
	if err != nil {
		return err
	}
	defer idx.Close()

	runs, err := idx.Recent(ctx, n)
	if err != nil {
		return err
	}
	return a.renderer().Runs(runs)
}
