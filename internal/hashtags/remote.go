package hashtags

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/spacesedan/scriptscore/internal/textutil"
)

// ChatClient is the one collaborator the remote strategy needs; the
// concrete OpenAI client satisfies it.
type ChatClient interface {
	Complete(ctx context.Context, system, user string, temperature float64) (string, error)
}

const suggestSystemPrompt = "You are a social media growth strategist. Generate concise, highly-viral hashtags for a short-form video. " +
	"Use only relevant, platform-safe hashtags. Prefer specificity over generic tags, but include 1-2 broad viral tags. " +
	"If trending hashtags are provided and they fit the content, prioritize including 1-3 of them. " +
	"Return ONLY a JSON array of strings (hashtags), 4 to 6 items, no explanations."

const scriptExcerptRunes = 500

var reSplitTags = regexp.MustCompile(`[\n,]`)

type suggestPayload struct {
	Topic            string             `json:"topic"`
	Sentiment        string             `json:"sentiment"`
	ScriptExcerpt    string             `json:"script_excerpt"`
	TrendingHashtags string             `json:"trending_hashtags_placeholder"`
	Constraints      suggestConstraints `json:"constraints"`
}

type suggestConstraints struct {
	OptimizeFor string         `json:"optimize_for"`
	Count       map[string]int `json:"count"`
	Format      string         `json:"format"`
	Rules       []string       `json:"rules"`
}

// Remote asks the chat model for tags, parsing its reply as a JSON array
// with a newline/comma split as best-effort recovery. Any failure falls
// back entirely to Heuristic. The call is single-shot; no retries.
func Remote(ctx context.Context, client ChatClient, req Request) []string {
	if req.MaxTags <= 0 {
		req.MaxTags = DefaultMaxTags
	}
	if client == nil {
		return Heuristic(req.Topic, req.SentimentLabel, req.MaxTags)
	}

	trending := strings.Join(req.Trending, ", ")
	if trending == "" {
		trending = "<none provided>"
	}

	payload := suggestPayload{
		Topic:            req.Topic,
		Sentiment:        req.SentimentLabel,
		ScriptExcerpt:    textutil.Excerpt(req.Script, scriptExcerptRunes),
		TrendingHashtags: trending,
		Constraints: suggestConstraints{
			OptimizeFor: "virality",
			Count:       map[string]int{"min": 4, "max": req.MaxTags},
			Format:      "return JSON array only",
			Rules: []string{
				"no spaces inside a hashtag",
				"no emojis",
				"no profanity",
				"mix broad and niche",
				"use trending tags only if relevant",
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("[Hashtags] Failed to marshal suggestion payload, using heuristic",
			slog.String("error", err.Error()))
		return Heuristic(req.Topic, req.SentimentLabel, req.MaxTags)
	}

	content, err := client.Complete(ctx, suggestSystemPrompt, string(body), 0.5)
	if err != nil {
		slog.Warn("[Hashtags] Remote suggestion failed, using heuristic",
			slog.String("error", err.Error()))
		return Heuristic(req.Topic, req.SentimentLabel, req.MaxTags)
	}

	var tags []string
	if err := json.Unmarshal([]byte(content), &tags); err != nil {
		for _, p := range reSplitTags.Split(content, -1) {
			if p = strings.TrimSpace(p); p != "" {
				tags = append(tags, p)
			}
		}
	}
	return Sanitize(tags, req.MaxTags)
}
