// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package youtube queries the YouTube Data API v3 search.list endpoint.
package youtube

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/pdiddy/search-tools/internal/httputil"
	"github.com/pdiddy/search-tools/internal/query"
	"github.com/pdiddy/search-tools/pkg/types"
)

// API names the service in errors and history records.
const API = "YouTube"

// Response is the youtube#searchListResponse envelope.
type Response struct {
	Kind          string   `json:"kind"`
	ETag          string   `json:"etag"`
	NextPageToken *string  `json:"nextPageToken,omitempty"`
	PrevPageToken *string  `json:"prevPageToken,omitempty"`
	RegionCode    *string  `json:"regionCode,omitempty"`
	PageInfo      PageInfo `json:"pageInfo"`
	Items         []Item   `json:"items,omitempty"`

	// Raw is the undecoded body, kept for history.
	Raw []byte `json:"-"`
}

// PageInfo reports result counts.
type PageInfo struct {
	TotalResults   *int64 `json:"totalResults,omitempty"`
	ResultsPerPage *int64 `json:"resultsPerPage,omitempty"`
}

// Item is one search hit.
type Item struct {
	Kind    string     `json:"kind"`
	ETag    string     `json:"etag"`
	ID      ResourceID `json:"id"`
	Snippet *Snippet   `json:"snippet,omitempty"`
}

// ResourceID identifies the matched resource. Exactly one of the three
// references is normally present, matching Kind.
type ResourceID struct {
	Kind       string  `json:"kind"`
	VideoID    *string `json:"videoId,omitempty"`
	ChannelID  *string `json:"channelId,omitempty"`
	PlaylistID *string `json:"playlistId,omitempty"`
}

// RefKind says which reference a ResourceID carries.
type RefKind int

const (
	RefNone RefKind = iota
	RefVideo
	RefChannel
	RefPlaylist
)

func (k RefKind) String() string {
	switch k {
	case RefVideo:
		return "video"
	case RefChannel:
		return "channel"
	case RefPlaylist:
		return "playlist"
	}
	return "none"
}

// Ref returns the populated reference. A video id wins over a channel id,
// and a channel id over a playlist id, when more than one is present.
func (id ResourceID) Ref() (RefKind, string) {
	switch {
	case id.VideoID != nil:
		return RefVideo, *id.VideoID
	case id.ChannelID != nil:
		return RefChannel, *id.ChannelID
	case id.PlaylistID != nil:
		return RefPlaylist, *id.PlaylistID
	}
	return RefNone, ""
}

// URL returns the youtube.com link for the reference, or "" when none is
// present.
func (id ResourceID) URL() string {
	kind, ref := id.Ref()
	switch kind {
	case RefVideo:
		return "https://www.youtube.com/watch?v=" + url.QueryEscape(ref)
	case RefChannel:
		return "https://www.youtube.com/channel/" + url.PathEscape(ref)
	case RefPlaylist:
		return "https://www.youtube.com/playlist?list=" + url.QueryEscape(ref)
	}
	return ""
}

// Snippet holds the basic details of a hit. Present when part includes
// snippet.
type Snippet struct {
	PublishedAt          string               `json:"publishedAt"`
	ChannelID            string               `json:"channelId"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	Thumbnails           map[string]Thumbnail `json:"thumbnails,omitempty"`
	ChannelTitle         string               `json:"channelTitle"`
	LiveBroadcastContent string               `json:"liveBroadcastContent"`
	PublishTime          string               `json:"publishTime"`
}

// Thumbnail is one thumbnail image, keyed by size name in Snippet.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  *int64 `json:"width,omitempty"`
	Height *int64 `json:"height,omitempty"`
}

// Client searches with one API key.
type Client struct {
	cfg       types.YouTubeConfig
	http      *http.Client
	userAgent string
	log       zerolog.Logger
}

// NewClient returns a Client. cfg must already have passed
// config.RequireYouTube.
func NewClient(cfg types.YouTubeConfig, httpCfg types.HTTPConfig, log zerolog.Logger) *Client {
	return &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: httpCfg.Timeout},
		userAgent: httpCfg.UserAgent,
		log:       log.With().Str("api", API).Logger(),
	}
}

// Params projects opts onto the ordered query parameters: key, part, then
// the present options sorted by key.
func (c *Client) Params(opts Options) ([]query.Pair, error) {
	part := opts.Part
	if part == "" {
		part = DefaultPart
	}
	return query.Project(opts,
		query.Pair{Key: "key", Value: c.cfg.APIKey},
		query.Pair{Key: "part", Value: part},
	)
}

// Search performs one search.list request.
func (c *Client) Search(ctx context.Context, opts Options) (*Response, error) {
	params, err := c.Params(opts)
	if err != nil {
		return nil, err
	}

	body, err := httputil.Get(ctx, c.http, httputil.Request{
		Endpoint:  c.cfg.Endpoint,
		Params:    params,
		UserAgent: c.userAgent,
		Secret:    []string{"key"},
	}, c.log)
	if err != nil {
		return nil, err
	}

	resp, err := query.Decode[Response](API, body)
	if err != nil {
		return nil, err
	}
	resp.Raw = body
	c.log.Debug().Int("items", len(resp.Items)).Msg("decoded response")
	return &resp, nil
}
