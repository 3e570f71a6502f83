package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spacesedan/scriptscore/internal/models"
	"github.com/spacesedan/scriptscore/internal/textutil"
)

const evalSystemPrompt = "You are a social media content analyst. Evaluate the provided short-form video script. " +
	"Output STRICT JSON only, matching the provided schema. Do not include any extra text. " +
	"Score ranges: use 0-1 floats for scores unless otherwise specified."

// Field-by-field description of the JSON the model must return; embedded
// verbatim in the request payload.
const evalSchema = `{
  "toxicity": {"score": "float 0..1", "label": "safe|risky"},
  "sentiment": {"label": "positive|neutral|negative", "score": "float -1..1"},
  "cta": {"present": "bool", "phrases": ["string"]},
  "hook": {"score": "float 0..1", "rationale": "string"},
  "readability": {"level": "easy|medium|hard", "score": "float 0..1"},
  "brand_safety": {"safe": "bool", "issues": ["string"]},
  "tone": {"label": "persuasive|informative|entertaining|story|neutral"},
  "virality": {"score": "int 0..100", "rationale": "string"},
  "platform_guidelines": {"compliant": "bool", "issues": ["string"]},
  "hashtags": ["string"]
}`

const evalScriptRunes = 2000

type evalPayload struct {
	Topic            string           `json:"topic"`
	Platform         string           `json:"platform"`
	TrendingHashtags string           `json:"trending_hashtags_placeholder"`
	Script           string           `json:"script"`
	Instructions     evalInstructions `json:"instructions"`
}

type evalInstructions struct {
	OptimizeHashtagsFor   string          `json:"optimize_hashtags_for"`
	HashtagsMax           int             `json:"hashtags_max"`
	UseTrendingIfRelevant bool            `json:"use_trending_if_relevant"`
	ReturnStrictJSON      bool            `json:"return_strict_json"`
	Schema                json.RawMessage `json:"schema"`
}

type openAIEvaluator struct {
	client ChatCompleter
}

// Evaluate issues the one-shot structured evaluation call. Single-shot by
// design: a failure here is the caller's cue to run the heuristics.
func (e openAIEvaluator) Evaluate(ctx context.Context, script string, opts Options) (models.RemoteEvaluation, error) {
	payload := evalPayload{
		Topic:            opts.Topic,
		Platform:         opts.Platform,
		TrendingHashtags: strings.Join(opts.Trending, ", "),
		Script:           textutil.Excerpt(script, evalScriptRunes),
		Instructions: evalInstructions{
			OptimizeHashtagsFor:   "virality",
			HashtagsMax:           opts.MaxHashtags,
			UseTrendingIfRelevant: true,
			ReturnStrictJSON:      true,
			Schema:                json.RawMessage(evalSchema),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.RemoteEvaluation{}, fmt.Errorf("marshal evaluation payload: %w", err)
	}

	content, err := e.client.Complete(ctx, evalSystemPrompt, string(body), 0.3)
	if err != nil {
		return models.RemoteEvaluation{}, err
	}

	var remote models.RemoteEvaluation
	if err := json.Unmarshal([]byte(content), &remote); err != nil {
		return models.RemoteEvaluation{}, fmt.Errorf("parse evaluation response: %w", err)
	}
	return remote, nil
}

var (
	sentimentLabels   = []string{"positive", "neutral", "negative"}
	readabilityLevels = []string{"easy", "medium", "hard"}
	toneLabels        = []string{"persuasive", "informative", "entertaining", "story", "neutral"}
)

// validateRemote enforces the schema on a decoded evaluation. json.Unmarshal
// is lenient, so out-of-range scores and unknown labels are caught here;
// a violation sends the builder down the heuristic path.
func validateRemote(r models.RemoteEvaluation) error {
	if r.Toxicity.Score < 0 || r.Toxicity.Score > 1 {
		return fmt.Errorf("toxicity score %v out of [0,1]", r.Toxicity.Score)
	}
	if r.Sentiment.Score < -1 || r.Sentiment.Score > 1 {
		return fmt.Errorf("sentiment score %v out of [-1,1]", r.Sentiment.Score)
	}
	if !oneOf(r.Sentiment.Label, sentimentLabels) {
		return fmt.Errorf("unknown sentiment label %q", r.Sentiment.Label)
	}
	if r.Hook.Score < 0 || r.Hook.Score > 1 {
		return fmt.Errorf("hook score %v out of [0,1]", r.Hook.Score)
	}
	if r.Readability.Score < 0 || r.Readability.Score > 1 {
		return fmt.Errorf("readability score %v out of [0,1]", r.Readability.Score)
	}
	if !oneOf(r.Readability.Level, readabilityLevels) {
		return fmt.Errorf("unknown readability level %q", r.Readability.Level)
	}
	if !oneOf(r.Tone.Label, toneLabels) {
		return fmt.Errorf("unknown tone label %q", r.Tone.Label)
	}
	if r.Virality.Score < 0 || r.Virality.Score > 100 {
		return fmt.Errorf("virality score %d out of [0,100]", r.Virality.Score)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
