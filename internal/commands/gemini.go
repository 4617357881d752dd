// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-tools/internal/config"
	"github.com/pdiddy/search-tools/internal/gemini"
)

var errNoPrompt = errors.New("a prompt is required: pass --query, arguments, --file, or - for stdin")

// NewGeminiCmd returns the search-gemini command.
func NewGeminiCmd(a *App) *cobra.Command {
	var (
		q    string
		file string
		opts gemini.Options
	)

	cmd := &cobra.Command{
		Use:   "search-gemini [prompt]",
		Short: "Ask a Gemini model a single question",
		Long: `search-gemini sends one prompt to the Gemini generateContent endpoint and
prints the answer, rendered as Markdown on a terminal. The API key comes
from GOOGLE_GENERATIVE_API_KEY, the config file, or
.secrets/google-generative-api-key.

Examples:
  search-gemini "What is Go?"
  search-gemini -m gemini-1.5-pro --temperature 0.2 -q "Summarize RFC 9110"
  cat notes.md | search-gemini -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := a.prompt(queryText(q, args), file)
			if err != nil {
				return err
			}
			return a.runGemini(cmd.Context(), prompt, opts)
		},
	}
	a.root(cmd)

	f := cmd.Flags()
	f.StringVarP(&q, "query", "q", "", "prompt text")
	f.StringVarP(&file, "file", "F", "", "read the prompt from a file")
	f.StringVarP(&opts.Model, "model", "m", "", "model name (default from gemini.model, gemini-2.0-flash)")
	float32Flag(f, &opts.Temperature, "temperature", "sampling temperature")
	float32Flag(f, &opts.TopP, "top-p", "nucleus sampling probability mass")
	float32Flag(f, &opts.TopK, "top-k", "top-k sampling")
	int32Flag(f, &opts.MaxOutputTokens, "max-output-tokens", "maximum tokens in the answer")
	int32Flag(f, &opts.CandidateCount, "candidate-count", "number of answers to generate")
	f.StringSliceVar(&opts.StopSequences, "stop", nil, "stop sequence, repeatable")
	stringFlag(f, &opts.SystemInstruction, "system", "system instruction")
	stringFlag(f, &opts.ResponseMIMEType, "response-mime-type", "answer MIME type, e.g. application/json")
	enumFlag(f, gemini.Thresholds, &opts.Safety, "safety", "blocking threshold for every harm category")

	return cmd
}

// prompt resolves the prompt from the query, a file, or stdin when the
// query is "-".
func (a *App) prompt(query, file string) (string, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading prompt file: %w", err)
		}
		query = string(data)
	case query == "-":
		data, err := io.ReadAll(a.In)
		if err != nil {
			return "", fmt.Errorf("reading prompt from stdin: %w", err)
		}
		query = string(data)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errNoPrompt
	}
	return query, nil
}

func (a *App) runGemini(ctx context.Context, prompt string, opts gemini.Options) error {
	cfg := a.cfg.Gemini
	if opts.Model != "" {
		cfg.Model = opts.Model
	}
	if err := config.RequireGemini(cfg); err != nil {
		return err
	}

	client, err := gemini.NewClient(ctx, cfg, a.cfg.HTTP, a.log)
	if err != nil {
		return err
	}
	resp, err := client.Generate(ctx, prompt, opts)
	if err != nil {
		return fmt.Errorf("querying Gemini: %w", err)
	}
	if err := a.record(ctx, "gemini", prompt, len(resp.Candidates), resp.Raw); err != nil {
		return err
	}
	return a.renderer().Gemini(resp)
}
