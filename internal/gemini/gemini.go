// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gemini sends a single prompt to the Gemini generateContent
// endpoint through the genai SDK.
package gemini

import (
	"context"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/rs/zerolog"
	"google.golang.org/genai"

	apierrors "github.com/pdiddy/search-tools/internal/errors"
	"github.com/pdiddy/search-tools/pkg/types"
)

// API names the service in errors and history records.
const API = "Gemini"

// Response is the decoded generateContent reply.
type Response struct {
	Model         string         `json:"model"`
	ModelVersion  *string        `json:"modelVersion,omitempty"`
	ResponseID    *string        `json:"responseId,omitempty"`
	Candidates    []Candidate    `json:"candidates,omitempty"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
	PromptBlocked *string        `json:"promptBlockReason,omitempty"`

	// Raw is the JSON form of the response, kept for history.
	Raw []byte `json:"-"`
}

// Candidate is one generated answer.
type Candidate struct {
	Index        int32   `json:"index"`
	Text         string  `json:"text"`
	FinishReason *string `json:"finishReason,omitempty"`
}

// UsageMetadata reports token counts.
type UsageMetadata struct {
	PromptTokenCount     int32 `json:"promptTokenCount"`
	CandidatesTokenCount int32 `json:"candidatesTokenCount"`
	TotalTokenCount      int32 `json:"totalTokenCount"`
}

// Text joins the text of every candidate.
func (r *Response) Text() string {
	parts := make([]string, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		if c.Text != "" {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Generator is the subset of *genai.Models the client calls.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client sends prompts to one model.
type Client struct {
	cfg      types.GeminiConfig
	models   Generator
	endpoint string
	log      zerolog.Logger
}

// NewClient builds a genai client for the Gemini API backend. cfg must
// already have passed config.RequireGemini.
func NewClient(ctx context.Context, cfg types.GeminiConfig, httpCfg types.HTTPConfig, log zerolog.Logger) (*Client, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: httpCfg.Timeout},
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return NewClientWithGenerator(cfg, client.Models, log), nil
}

// NewClientWithGenerator returns a Client that sends requests through g.
func NewClientWithGenerator(cfg types.GeminiConfig, g Generator, log zerolog.Logger) *Client {
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = "generativelanguage.googleapis.com"
	}
	return &Client{
		cfg:      cfg,
		models:   g,
		endpoint: endpoint,
		log:      log.With().Str("api", API).Logger(),
	}
}

// Generate sends prompt as a single user turn.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (*Response, error) {
	model := c.cfg.Model
	if opts.Model != "" {
		model = opts.Model
	}

	c.log.Debug().Str("model", model).Int("prompt_len", len(prompt)).Msg("sending request")

	raw, err := c.models.GenerateContent(ctx, model, genai.Text(prompt), opts.Config())
	if err != nil {
		return nil, c.mapError(err)
	}

	resp := convert(model, raw)
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, &apierrors.DecodeError{API: API, Err: err}
	}
	resp.Raw = body

	c.log.Debug().Int("candidates", len(resp.Candidates)).Msg("decoded response")
	return resp, nil
}

func (c *Client) mapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apierrors.NewAPIError(apiErr.Code, c.endpoint, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apierrors.NewAPIError(apiErrPtr.Code, c.endpoint, apiErrPtr.Message)
	}
	if isJSONError(err) {
		return &apierrors.DecodeError{API: API, Err: err}
	}
	return &apierrors.TransportError{Endpoint: c.endpoint, Err: err}
}

// isJSONError reports whether err came from the SDK failing to decode a
// response body. The SDK decodes with encoding/json.
func isJSONError(err error) bool {
	var syntaxErr *stdjson.SyntaxError
	var typeErr *stdjson.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func convert(model string, raw *genai.GenerateContentResponse) *Response {
	resp := &Response{Model: model}
	if raw == nil {
		return resp
	}
	if raw.ModelVersion != "" {
		resp.ModelVersion = &raw.ModelVersion
	}
	if raw.ResponseID != "" {
		resp.ResponseID = &raw.ResponseID
	}
	if raw.PromptFeedback != nil && raw.PromptFeedback.BlockReason != "" {
		reason := string(raw.PromptFeedback.BlockReason)
		resp.PromptBlocked = &reason
	}
	if u := raw.UsageMetadata; u != nil {
		resp.UsageMetadata = &UsageMetadata{
			PromptTokenCount:     u.PromptTokenCount,
			CandidatesTokenCount: u.CandidatesTokenCount,
			TotalTokenCount:      u.TotalTokenCount,
		}
	}

	for _, cand := range raw.Candidates {
		if cand == nil {
			continue
		}
		out := Candidate{Index: cand.Index}
		if cand.Content != nil {
			var b strings.Builder
			for _, p := range cand.Content.Parts {
				if p != nil && !p.Thought {
					b.WriteString(p.Text)
				}
			}
			out.Text = b.String()
		}
		if cand.FinishReason != "" {
			reason := string(cand.FinishReason)
			out.FinishReason = &reason
		}
		resp.Candidates = append(resp.Candidates, out)
	}
	return resp
}
