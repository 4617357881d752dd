// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package google queries the Custom Search JSON API.
package google

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pdiddy/search-tools/internal/httputil"
	"github.com/pdiddy/search-tools/internal/query"
	"github.com/pdiddy/search-tools/pkg/types"
)

// API names the service in errors and history records.
const API = "Google"

// Response is the customsearch#search envelope.
type Response struct {
	Kind              string             `json:"kind"`
	URL               *URLTemplate       `json:"url,omitempty"`
	Queries           *Queries           `json:"queries,omitempty"`
	Context           *Context           `json:"context,omitempty"`
	SearchInformation *SearchInformation `json:"searchInformation,omitempty"`
	Spelling          *Spelling          `json:"spelling,omitempty"`
	Items             []Item             `json:"items,omitempty"`

	// Raw is the undecoded body, kept for history.
	Raw []byte `json:"-"`
}

// URLTemplate describes the OpenSearch template of the API.
type URLTemplate struct {
	Type     string `json:"type"`
	Template string `json:"template"`
}

// Queries holds the request metadata and the paging queries.
type Queries struct {
	Request      []QueryInfo `json:"request,omitempty"`
	NextPage     []QueryInfo `json:"nextPage,omitempty"`
	PreviousPage []QueryInfo `json:"previousPage,omitempty"`
}

// QueryInfo echoes one query. Only the fields a caller can act on are kept.
type QueryInfo struct {
	Title          string  `json:"title,omitempty"`
	TotalResults   *string `json:"totalResults,omitempty"`
	SearchTerms    *string `json:"searchTerms,omitempty"`
	Count          *int64  `json:"count,omitempty"`
	StartIndex     *int64  `json:"startIndex,omitempty"`
	InputEncoding  *string `json:"inputEncoding,omitempty"`
	OutputEncoding *string `json:"outputEncoding,omitempty"`
	Safe           *string `json:"safe,omitempty"`
	CX             *string `json:"cx,omitempty"`
}

// Context carries the search engine title.
type Context struct {
	Title string `json:"title"`
}

// SearchInformation summarizes the search.
type SearchInformation struct {
	SearchTime            float64 `json:"searchTime"`
	FormattedSearchTime   string  `json:"formattedSearchTime"`
	TotalResults          string  `json:"totalResults"`
	FormattedTotalResults string  `json:"formattedTotalResults"`
}

// Spelling holds a corrected query suggestion.
type Spelling struct {
	CorrectedQuery     string `json:"correctedQuery"`
	HTMLCorrectedQuery string `json:"htmlCorrectedQuery"`
}

// Item is one search hit.
type Item struct {
	Kind             string  `json:"kind"`
	Title            string  `json:"title"`
	HTMLTitle        string  `json:"htmlTitle"`
	Link             string  `json:"link"`
	DisplayLink      string  `json:"displayLink"`
	Snippet          string  `json:"snippet"`
	HTMLSnippet      string  `json:"htmlSnippet"`
	FormattedURL     string  `json:"formattedUrl"`
	HTMLFormattedURL string  `json:"htmlFormattedUrl"`
	CacheID          *string `json:"cacheId,omitempty"`
	Mime             *string `json:"mime,omitempty"`
	FileFormat       *string `json:"fileFormat,omitempty"`
	Image            *Image  `json:"image,omitempty"`
}

// Image is present on image search hits.
type Image struct {
	ContextLink     string `json:"contextLink"`
	Height          int64  `json:"height"`
	Width           int64  `json:"width"`
	ByteSize        int64  `json:"byteSize"`
	ThumbnailLink   string `json:"thumbnailLink"`
	ThumbnailHeight int64  `json:"thumbnailHeight"`
	ThumbnailWidth  int64  `json:"thumbnailWidth"`
}

// Client searches with one API key and engine.
type Client struct {
	cfg       types.GoogleConfig
	http      *http.Client
	userAgent string
	log       zerolog.Logger
}

// NewClient returns a Client. cfg must already have passed
// config.RequireGoogle.
func NewClient(cfg types.GoogleConfig, httpCfg types.HTTPConfig, log zerolog.Logger) *Client {
	return &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: httpCfg.Timeout},
		userAgent: httpCfg.UserAgent,
		log:       log.With().Str("api", API).Logger(),
	}
}

// Params projects opts onto the ordered query parameters: key, cx, then the
// present options sorted by key. A nil Q sends no q.
func (c *Client) Params(opts Options) ([]query.Pair, error) {
	cx := c.cfg.EngineID
	if opts.CX != nil && *opts.CX != "" {
		cx = *opts.CX
	}
	return query.Project(opts,
		query.Pair{Key: "key", Value: c.cfg.APIKey},
		query.Pair{Key: "cx", Value: cx},
	)
}

// Search performs one search request.
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
