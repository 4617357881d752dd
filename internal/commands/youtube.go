// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-tools/internal/config"
	"github.com/pdiddy/search-tools/internal/youtube"
)

// CLI defaults for search-youtube.
const (
	DefaultMaxResults = 25
	DefaultOrder      = youtube.OrderRelevance
	DefaultSafeSearch = youtube.SafeSearchModerate
)

// youtubeDefaults returns the options search-youtube starts from.
func youtubeDefaults() youtube.Options {
	maxResults := int64(DefaultMaxResults)
	order := DefaultOrder
	safe := DefaultSafeSearch
	return youtube.Options{
		Part:       youtube.DefaultPart,
		MaxResults: &maxResults,
		Order:      &order,
		SafeSearch: &safe,
	}
}

// NewYouTubeCmd returns the search-youtube command.
func NewYouTubeCmd(a *App) *cobra.Command {
	opts := youtubeDefaults()

	cmd := &cobra.Command{
		Use:   "search-youtube [query]",
		Short: "Search YouTube with the Data API v3 search.list endpoint",
		Long: `search-youtube sends one search.list request and prints the matching
videos, channels and playlists. The API key comes from YOUTUBE_API_KEY, the
config file, or .secrets/youtube-api-key.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Q == nil && len(args) > 0 {
				q := queryText("", args)
				opts.Q = &q
			}
			return a.runYouTube(cmd.Context(), opts)
		},
	}
	a.root(cmd)

	f := cmd.Flags()
	f.StringVarP(&opts.Part, "part", "p", opts.Part, "comma-separated resource properties to include")
	f.VarP(optString{&opts.Q}, "query", "q", "search terms; supports | for OR and - for NOT")
	stringFlag(f, &opts.ChannelID, "channel-id", "only resources created by this channel")
	enumFlag(f, youtube.ChannelTypes, &opts.ChannelType, "channel-type", "restrict to a type of channel")
	enumFlag(f, youtube.EventTypes, &opts.EventType, "event-type", "restrict to broadcast events")
	stringFlag(f, &opts.Location, "location", "latitude,longitude center, e.g. 37.42307,-122.08427")
	stringFlag(f, &opts.LocationRadius, "location-radius", "distance from location, e.g. 10km")
	int64Flag(f, &opts.MaxResults, "max-results", "maximum items to return, 0 to 50")
	stringFlag(f, &opts.OnBehalfOfContentOwner, "on-behalf-of-content-owner", "content owner the request is made for")
	enumFlag(f, youtube.Orders, &opts.Order, "order", "result ordering")
	stringFlag(f, &opts.PageToken, "page-token", "page of the result set to return")
	stringFlag(f, &opts.PublishedAfter, "published-after", "only resources created after this RFC 3339 time")
	stringFlag(f, &opts.PublishedBefore, "published-before", "only resources created before this RFC 3339 time")
	stringFlag(f, &opts.RegionCode, "region-code", "return results for this country, ISO 3166-1 alpha-2")
	stringFlag(f, &opts.RelevanceLanguage, "relevance-language", "prefer results in this language, ISO 639-1")
	enumFlag(f, youtube.SafeSearches, &opts.SafeSearch, "safe-search", "restricted content filter")
	enumFlag(f, youtube.Topics, &opts.TopicID, "topic-id", "only resources about this topic")
	enumFlag(f, youtube.Types, &opts.Type, "type", "only this kind of resource")
	enumFlag(f, youtube.VideoCaptions, &opts.VideoCaption, "video-caption", "filter videos by captions")
	stringFlag(f, &opts.VideoCategoryID, "video-category-id", "filter videos by category")
	enumFlag(f, youtube.VideoDefinitions, &opts.VideoDefinition, "video-definition", "filter videos by definition")
	enumFlag(f, youtube.VideoDimensions, &opts.VideoDimension, "video-dimension", "filter videos by dimension")
	enumFlag(f, youtube.VideoDurations, &opts.VideoDuration, "video-duration", "filter videos by duration")
	enumFlag(f, youtube.VideoEmbeddables, &opts.VideoEmbeddable, "video-embeddable", "only embeddable videos")
	enumFlag(f, youtube.VideoLicenses, &opts.VideoLicense, "video-license", "filter videos by license")
	enumFlag(f, youtube.VideoPaidProductPlacements, &opts.VideoPaidProductPlacement, "video-paid-product-placement", "only videos with paid product placement")
	enumFlag(f, youtube.VideoSyndicateds, &opts.VideoSyndicated, "video-syndicated", "only videos playable outside youtube.com")
	enumFlag(f, youtube.VideoTypes, &opts.VideoType, "video-type", "filter videos by type")

	return cmd
}

func (a *App) runYouTube(ctx context.Context, opts youtube.Options) error {
	if err := config.RequireYouTube(a.cfg.YouTube); err != nil {
		return err
	}

	resp, err := youtube.NewClient(a.cfg.YouTube, a.cfg.HTTP, a.log).Search(ctx, opts)
	if err != nil {
		return fmt.Errorf("searching YouTube: %w", err)
	}

	var q string
	if opts.Q != nil {
		q = *opts.Q
	}
	if err := a.record(ctx, "youtube", q, len(resp.Items), resp.Raw); err != nil {
		return err
	}
	return a.renderer().YouTube(resp)
}
