// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/search-tools/internal/enum"
	apierrors "github.com/pdiddy/search-tools/internal/errors"
	"github.com/pdiddy/search-tools/internal/query"
	"github.com/pdiddy/search-tools/pkg/types"
)

const videoResponse = `{
  "kind": "youtube#searchListResponse",
  "etag": "abc",
  "pageInfo": {"totalResults": 1000000, "resultsPerPage": 1},
  "items": [
    {
      "kind": "youtube#searchResult",
      "etag": "def",
      "id": {"kind": "youtube#video", "videoId": "dQw4w9WgXcQ"},
      "snippet": {
        "publishedAt": "2009-10-25T06:57:33Z",
        "channelId": "UCuAXFkgsw1L7xaCfnd5JJOw",
        "title": "Never Gonna Give You Up",
        "description": "The official video",
        "thumbnails": {"default": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/default.jpg", "width": 120, "height": 90}},
        "channelTitle": "Rick Astley",
        "liveBroadcastContent": "none",
        "publishTime": "2009-10-25T06:57:33Z"
      }
    }
  ]
}`

const channelOnlyResponse = `{
  "kind": "youtube#searchListResponse",
  "etag": "abc",
  "items": [
    {"kind": "youtube#searchResult", "etag": "x", "id": {"kind": "youtube#channel", "channelId": "UC123"}}
  ]
}`

func ptr[T any](v T) *T { return &v }

func newTestClient(endpoint string) *Client {
	return NewClient(types.YouTubeConfig{APIKey: "yt-key", Endpoint: endpoint}, types.HTTPConfig{}, zerolog.Nop())
}

func serve(t *testing.T, body string, captured **http.Request) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			*captured = r
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestSearch(t *testing.T) {
	var captured *http.Request
	ts := serve(t, videoResponse, &captured)

	resp, err := newTestClient(ts.URL).Search(context.Background(), Options{
		Q:          ptr("rick astley"),
		MaxResults: ptr(int64(1)),
		Order:      ptr(OrderViewCount),
		Type:       ptr(TypeVideo),
	})
	require.NoError(t, err)

	q := captured.URL.Query()
	assert.Equal(t, "yt-key", q.Get("key"))
	assert.Equal(t, DefaultPart, q.Get("part"))
	assert.Equal(t, "rick astley", q.Get("q"))
	assert.Equal(t, "1", q.Get("maxResults"))
	assert.Equal(t, "viewCount", q.Get("order"))
	assert.Equal(t, "video", q.Get("type"))
	assert.Len(t, q, 6)

	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	kind, ref := item.ID.Ref()
	assert.Equal(t, RefVideo, kind)
	assert.Equal(t, "dQw4w9WgXcQ", ref)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", item.ID.URL())
	require.NotNil(t, item.Snippet)
	assert.Equal(t, "Rick Astley", item.Snippet.ChannelTitle)
	assert.Equal(t, int64(90), *item.Snippet.Thumbnails["default"].Height)
	assert.Equal(t, int64(1000000), *resp.PageInfo.TotalResults)
	assert.Nil(t, resp.NextPageToken)
}

func TestSearchChannelOnlyID(t *testing.T) {
	ts := serve(t, channelOnlyResponse, nil)

	resp, err := newTestClient(ts.URL).Search(context.Background(), Options{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	id := resp.Items[0].ID
	require.NotNil(t, id.ChannelID)
	assert.Equal(t, "UC123", *id.ChannelID)
	assert.Nil(t, id.VideoID)
	assert.Nil(t, id.PlaylistID)
	assert.Nil(t, resp.Items[0].Snippet)
	assert.Nil(t, resp.PageInfo.TotalResults)

	kind, _ := id.Ref()
	assert.Equal(t, RefChannel, kind)
	assert.Equal(t, "https://www.youtube.com/channel/UC123", id.URL())
}

func TestResourceIDRef(t *testing.T) {
	tests := []struct {
		name     string
		id       ResourceID
		wantKind RefKind
		wantURL  string
	}{
		{"playlist", ResourceID{PlaylistID: ptr("PL1")}, RefPlaylist, "https://www.youtube.com/playlist?list=PL1"},
		{"none", ResourceID{Kind: "youtube#video"}, RefNone, ""},
		{"video wins", ResourceID{VideoID: ptr("v"), ChannelID: ptr("c")}, RefVideo, "https://www.youtube.com/watch?v=v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, _ := tt.id.Ref()
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantURL, tt.id.URL())
		})
	}
}

func TestParams(t *testing.T) {
	c := newTestClient("http://unused")

	pairs, err := c.Params(Options{
		Part:                      "id,snippet",
		TopicID:                   ptr(TopicJazz),
		VideoLicense:              ptr(VideoLicenseCreativeCommon),
		VideoCaption:              ptr(VideoCaptionClosedCaption),
		VideoDimension:            ptr(VideoDimension3D),
		VideoPaidProductPlacement: ptr(VideoPaidProductPlacementTrue),
	})
	require.NoError(t, err)
	assert.Equal(t, []query.Pair{
		{Key: "key", Value: "yt-key"},
		{Key: "part", Value: "id,snippet"},
		{Key: "topicId", Value: "/m/03_d0"},
		{Key: "videoCaption", Value: "closedCaption"},
		{Key: "videoDimension", Value: "3d"},
		{Key: "videoLicense", Value: "creativeCommon"},
		{Key: "videoPaidProductPlacement", Value: "true"},
	}, pairs)
}

func TestEnumRoundTrip(t *testing.T) {
	tests := map[string]func(*testing.T){
		"channel-type":  func(t *testing.T) { checkLiterals(t, ChannelTypes, "any", "show") },
		"event-type":    func(t *testing.T) { checkLiterals(t, EventTypes, "completed", "live", "upcoming") },
		"order":         func(t *testing.T) { checkLiterals(t, Orders, "date", "rating", "relevance", "title", "videoCount", "viewCount") },
		"safe-search":   func(t *testing.T) { checkLiterals(t, SafeSearches, "moderate", "none", "strict") },
		"type":          func(t *testing.T) { checkLiterals(t, Types, "channel", "playlist", "video") },
		"video-caption": func(t *testing.T) { checkLiterals(t, VideoCaptions, "any", "closedCaption", "none") },
		"video-definition": func(t *testing.T) {
			checkLiterals(t, VideoDefinitions, "any", "high", "standard")
		},
		"video-dimension":  func(t *testing.T) { checkLiterals(t, VideoDimensions, "any", "2d", "3d") },
		"video-duration":   func(t *testing.T) { checkLiterals(t, VideoDurations, "any", "long", "medium", "short") },
		"video-embeddable": func(t *testing.T) { checkLiterals(t, VideoEmbeddables, "any", "true") },
		"video-license":    func(t *testing.T) { checkLiterals(t, VideoLicenses, "any", "creativeCommon", "youtube") },
		"video-paid-product-placement": func(t *testing.T) {
			checkLiterals(t, VideoPaidProductPlacements, "any", "true")
		},
		"video-syndicated": func(t *testing.T) { checkLiterals(t, VideoSyndicateds, "any", "true") },
		"video-type":       func(t *testing.T) { checkLiterals(t, VideoTypes, "any", "episode", "movie") },
	}
	for name, check := range tests {
		t.Run(name, check)
	}
}

// checkLiterals asserts that every value of s survives name and literal
// round trips and that its literals are want, in declaration order.
func checkLiterals[T ~int](t *testing.T, s *enum.Set[T], want ...string) {
	t.Helper()
	got := make([]string, 0, len(want))
	for _, v := range s.Values() {
		lit := s.Literal(v)
		got = append(got, lit)

		back, ok := s.FromLiteral(lit)
		require.True(t, ok, "%s literal %q", s.Kind(), lit)
		assert.Equal(t, v, back)

		parsed, err := s.Parse(s.Name(v))
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	assert.Equal(t, want, got)
}

func TestTopics(t *testing.T) {
	assert.Len(t, Topics.Values(), 62)
	assert.Equal(t, "/m/04rlf", TopicMusic.String())
	assert.Equal(t, "/m/01k8wb", TopicKnowledge.String())

	v, err := Topics.Parse("professional-wrestling")
	require.NoError(t, err)
	assert.Equal(t, TopicProfessionalWrestling, v)

	for _, v := range Topics.Values() {
		got, ok := Topics.FromLiteral(Topics.Literal(v))
		require.True(t, ok)
		assert.Equal(t, v, got)
		parsed, err := Topics.Parse(Topics.Name(v))
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}

func TestSearchDecodeError(t *testing.T) {
	ts := serve(t, `{"kind": "youtube#searchListResponse", "items": {}}`, nil)

	_, err := newTestClient(ts.URL).Search(context.Background(), Options{})
	assert.ErrorIs(t, err, apierrors.ErrDecode)
}
