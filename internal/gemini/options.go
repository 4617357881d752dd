// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gemini

import (
	"google.golang.org/genai"

	"github.com/pdiddy/search-tools/internal/enum"
)

// Options holds the optional generation settings. A nil field is left unset
// in the request so the model default applies.
type Options struct {
	// Model overrides the configured model when non-empty.
	Model string

	Temperature       *float32
	TopP              *float32
	TopK              *float32
	MaxOutputTokens   *int32
	CandidateCount    *int32
	StopSequences     []string
	SystemInstruction *string
	ResponseMIMEType  *string
	// Safety applies one threshold to every harm category.
	Safety *Threshold
}

// Threshold is a safety blocking threshold.
type Threshold int

const (
	ThresholdOff Threshold = iota
	ThresholdBlockNone
	ThresholdBlockOnlyHigh
	ThresholdBlockMediumAndAbove
	ThresholdBlockLowAndAbove
)

var Thresholds = enum.New("safety",
	enum.Choice[Threshold]{Value: ThresholdOff, Name: "off", Literal: string(genai.HarmBlockThresholdOff)},
	enum.Choice[Threshold]{Value: ThresholdBlockNone, Name: "block-none", Literal: string(genai.HarmBlockThresholdBlockNone)},
	enum.Choice[Threshold]{Value: ThresholdBlockOnlyHigh, Name: "block-only-high", Literal: string(genai.HarmBlockThresholdBlockOnlyHigh)},
	enum.Choice[Threshold]{Value: ThresholdBlockMediumAndAbove, Name: "block-medium-and-above", Literal: string(genai.HarmBlockThresholdBlockMediumAndAbove)},
	enum.Choice[Threshold]{Value: ThresholdBlockLowAndAbove, Name: "block-low-and-above", Literal: string(genai.HarmBlockThresholdBlockLowAndAbove)},
)

func (v Threshold) String() string { return Thresholds.Literal(v) }

// harmCategories are the categories a Safety threshold applies to.
var harmCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

// Config projects opts onto a request config. Only present fields are set;
// it returns nil when no option is present.
func (opts Options) Config() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	set := false

	if opts.Temperature != nil {
		cfg.Temperature = genai.Ptr(*opts.Temperature)
		set = true
	}
	if opts.TopP != nil {
		cfg.TopP = genai.Ptr(*opts.TopP)
		set = true
	}
	if opts.TopK != nil {
		cfg.TopK = genai.Ptr(*opts.TopK)
		set = true
	}
	if opts.MaxOutputTokens != nil {
		cfg.MaxOutputTokens = *opts.MaxOutputTokens
		set = true
	}
	if opts.CandidateCount != nil {
		cfg.CandidateCount = *opts.CandidateCount
		set = true
	}
	if len(opts.StopSequences) > 0 {
		cfg.StopSequences = opts.StopSequences
		set = true
	}
	if opts.SystemInstruction != nil {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: *opts.SystemInstruction}},
		}
		set = true
	}
	if opts.ResponseMIMEType != nil {
		cfg.ResponseMIMEType = *opts.ResponseMIMEType
		set = true
	}
	if opts.Safety != nil {
		threshold := genai.HarmBlockThreshold(opts.Safety.String())
		for _, c := range harmCategories {
			cfg.SafetySettings = append(cfg.SafetySettings, &genai.SafetySetting{
				Category:  c,
				Threshold: threshold,
			})
		}
		set = true
	}

	if !set {
		return nil
	}
	return cfg
}
