// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/search-tools/internal/gemini"
	"github.com/pdiddy/search-tools/internal/google"
	"github.com/pdiddy/search-tools/internal/history"
	"github.com/pdiddy/search-tools/internal/youtube"
)

func ptr[T any](v T) *T { return &v }

func googleResponse() *google.Response {
	return &google.Response{
		Kind: "customsearch#search",
		Items: []google.Item{{
			Title:   "The Go Programming Language",
			Link:    "https://go.dev/",
			Snippet: "Build simple, secure, scalable systems with Go. ",
		}},
	}
}

func youtubeResponse() *youtube.Response {
	return &youtube.Response{
		Kind: "youtube#searchListResponse",
		Items: []youtube.Item{
			{
				ID:      youtube.ResourceID{Kind: "youtube#video", VideoID: ptr("abc")},
				Snippet: &youtube.Snippet{Title: "Intro to Go", ChannelTitle: "Gopher TV", PublishedAt: "2024-01-01T00:00:00Z"},
			},
			{
				ID:      youtube.ResourceID{Kind: "youtube#channel", ChannelID: ptr("UC1")},
				Snippet: &youtube.Snippet{Title: "Gopher TV", ChannelTitle: "Gopher TV"},
			},
		},
	}
}

func TestGoogleText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Google(googleResponse()))

	assert.Equal(t, "Title: The Go Programming Language\n"+
		"Link: https://go.dev/\n"+
		"Snippet: Build simple, secure, scalable systems with Go.\n\n", buf.String())
}

func TestGoogleTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatTable).Google(googleResponse()))

	out := buf.String()
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Link")
	assert.Contains(t, out, "The Go Programming Language")
	assert.Contains(t, out, "https://go.dev/")
}

func TestYouTubeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).YouTube(youtubeResponse()))

	out := buf.String()
	assert.Contains(t, out, "Title: Intro to Go\n")
	assert.Contains(t, out, "Published at: 2024-01-01T00:00:00Z\n")
	assert.Contains(t, out, "Video url: https://www.youtube.com/watch?v=abc\n")
	assert.Contains(t, out, "Channel url: https://www.youtube.com/channel/UC1\n")
}

func TestYouTubeTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatTable).YouTube(youtubeResponse()))

	out := buf.String()
	for _, want := range []string{"Channel", "Intro to Go", "Gopher TV", "https://www.youtube.com/watch?v=abc"} {
		assert.Contains(t, out, want)
	}
}

func TestEmptyResults(t *testing.T) {
	tests := []struct {
		name   string
		render func(r *Renderer) error
	}{
		{"google", func(r *Renderer) error { return r.Google(&google.Response{Kind: "customsearch#search"}) }},
		{"youtube", func(r *Renderer) error { return r.YouTube(&youtube.Response{}) }},
		{"gemini", func(r *Renderer) error { return r.Gemini(&gemini.Response{Model: "m"}) }},
		{"runs", func(r *Renderer) error { return r.Runs(nil) }},
	}
	for _, tt := range tests {
		for _, f := range []Format{FormatText, FormatTable} {
			t.Run(tt.name+"/"+f.String(), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, tt.render(New(&buf, f)))
				assert.Equal(t, NoResults+"\n", buf.String())
			})
		}
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	resp := googleResponse()
	resp.Raw = []byte(`{"ignored":true}`)
	require.NoError(t, New(&buf, FormatJSON).Google(resp))

	out := buf.Bytes()
	require.True(t, gjson.ValidBytes(out))
	assert.Equal(t, "customsearch#search", gjson.GetBytes(out, "kind").String())
	assert.Equal(t, "https://go.dev/", gjson.GetBytes(out, "items.0.link").String())
	assert.False(t, gjson.GetBytes(out, "Raw").Exists())
	assert.False(t, gjson.GetBytes(out, "items.0.cacheId").Exists(), "absent optionals stay absent")
	assert.Contains(t, string(out), "\n  \"kind\"")
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	resp := youtubeResponse()
	resp.PageInfo.TotalResults = ptr(int64(2))
	require.NoError(t, New(&buf, FormatYAML).YouTube(resp))

	var got struct {
		Kind     string `yaml:"kind"`
		PageInfo struct {
			TotalResults int `yaml:"totalResults"`
		} `yaml:"pageInfo"`
		Items []struct {
			ID struct {
				VideoID string `yaml:"videoId"`
			} `yaml:"id"`
		} `yaml:"items"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "youtube#searchListResponse", got.Kind)
	assert.Equal(t, 2, got.PageInfo.TotalResults)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "abc", got.Items[0].ID.VideoID)
	assert.False(t, strings.HasPrefix(buf.String(), "{"), "block style expected")
}

func TestGeminiText(t *testing.T) {
	var buf bytes.Buffer
	resp := &gemini.Response{Candidates: []gemini.Candidate{{Text: "**Go** is a language.\n"}}}
	require.NoError(t, New(&buf, FormatText).Gemini(resp))

	assert.Equal(t, "**Go** is a language.\n", buf.String(), "non-terminal output is unstyled")
}

func TestGeminiPromptBlocked(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Gemini(&gemini.Response{PromptBlocked: ptr("SAFETY")}))
	assert.Equal(t, "Prompt blocked: SAFETY\n", buf.String())
}

func TestRuns(t *testing.T) {
	runs := []history.Run{{ID: 3, Source: "youtube", Query: "golang", Items: 25, Created: time.Now()}}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Runs(runs))
	assert.Contains(t, buf.String(), "golang")
	assert.True(t, strings.HasPrefix(buf.String(), "3  "))

	buf.Reset()
	require.NoError(t, New(&buf, FormatJSON).Runs(runs))
	assert.Equal(t, int64(25), gjson.GetBytes(buf.Bytes(), "0.items").Int())
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"text", "table", "json", "yaml"}, Formats.Names())
	f, err := Formats.Parse("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
}
