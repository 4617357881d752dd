// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-tools/internal/config"
	"github.com/pdiddy/search-tools/internal/google"
)

// NewGoogleCmd returns the search-google command.
func NewGoogleCmd(a *App) *cobra.Command {
	var opts google.Options

	cmd := &cobra.Command{
		Use:   "search-google [query]",
		Short: "Search the web with the Google Custom Search JSON API",
		Long: `search-google sends one request to the Custom Search JSON API and prints
the results. Credentials come from GOOGLE_SEARCH_API_KEY and
GOOGLE_SEARCH_ENGINE_ID, the config file, or .secrets/.

Every API parameter has a flag; parameters whose flag is not given are not
sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Q == nil && len(args) > 0 {
				q := queryText("", args)
				opts.Q = &q
			}
			return a.runGoogle(cmd.Context(), opts)
		},
	}
	a.root(cmd)

	f := cmd.Flags()
	f.VarP(optString{&opts.Q}, "query", "q", "search terms")
	stringFlag(f, &opts.CX, "cx", "programmable search engine ID, overrides GOOGLE_SEARCH_ENGINE_ID")
	enumFlag(f, google.C2COffs, &opts.C2COff, "c2coff", "Simplified and Traditional Chinese search")
	stringFlag(f, &opts.CR, "cr", "restrict to documents from a country, e.g. countryUS")
	stringFlag(f, &opts.DateRestrict, "date-restrict", "restrict by date: d[n], w[n], m[n] or y[n]")
	stringFlag(f, &opts.ExactTerms, "exact-terms", "phrase all results must contain")
	stringFlag(f, &opts.ExcludeTerms, "exclude-terms", "word or phrase no result may contain")
	stringFlag(f, &opts.FileType, "file-type", "restrict to a file extension")
	enumFlag(f, google.Filters, &opts.Filter, "filter", "duplicate content filter")
	stringFlag(f, &opts.GL, "gl", "geolocation of the end user, a country code")
	stringFlag(f, &opts.HighRange, "high-range", "end value of a search range")
	stringFlag(f, &opts.HL, "hl", "interface language")
	stringFlag(f, &opts.HQ, "hq", "terms appended to the query as if joined by AND")
	enumFlag(f, google.ImgColorTypes, &opts.ImgColorType, "img-color-type", "image color type")
	enumFlag(f, google.ImgDominantColors, &opts.ImgDominantColor, "img-dominant-color", "image dominant color")
	enumFlag(f, google.ImgSizes, &opts.ImgSize, "img-size", "image size")
	enumFlag(f, google.ImgTypes, &opts.ImgType, "img-type", "image type")
	stringFlag(f, &opts.LinkSite, "link-site", "results must link to this URL")
	stringFlag(f, &opts.LowRange, "low-range", "start value of a search range")
	stringFlag(f, &opts.LR, "lr", "restrict to a language, e.g. lang_en")
	int64Flag(f, &opts.Num, "num", "number of results, 1 to 10")
	stringFlag(f, &opts.OrTerms, "or-terms", "additional terms, any of which may match")
	stringFlag(f, &opts.RelatedSite, "related-site", "results must be related to this URL")
	stringFlag(f, &opts.Rights, "rights", "licensing filters, e.g. cc_publicdomain")
	enumFlag(f, google.Safes, &opts.Safe, "safe", "SafeSearch level")
	enumFlag(f, google.SearchTypes, &opts.SearchType, "search-type", "specialized search")
	stringFlag(f, &opts.SiteSearch, "site-search", "site to include or exclude")
	enumFlag(f, google.SiteSearchFilters, &opts.SiteSearchFilter, "site-search-filter", "include or exclude site-search")
	stringFlag(f, &opts.Sort, "sort", "sort expression, e.g. date")
	int64Flag(f, &opts.Start, "start", "index of the first result")

	return cmd
}

func (a *App) runGoogle(ctx context.Context, opts google.Options) error {
	var cx string
	if opts.CX != nil {
		cx = *opts.CX
	}
	if err := config.RequireGoogle(a.cfg.Google, cx); err != nil {
		return err
	}

	resp, err := google.NewClient(a.cfg.Google, a.cfg.HTTP, a.log).Search(ctx, opts)
	if err != nil {
		return fmt.Errorf("searching Google: %w", err)
	}

	var q string
	if opts.Q != nil {
		q = *opts.Q
	}
	if err := a.record(ctx, "google", q, len(resp.Items), resp.Raw); err != nil {
		return err
	}
	return a.renderer().Google(resp)
}
