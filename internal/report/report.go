// Package report assembles the unified script analysis. One call runs
// either the local heuristic analyzers or a single remote-model
// evaluation; both paths produce the identical report shape, and every
// remote failure degrades to the heuristic path.
package report

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/spacesedan/scriptscore/internal/analyzers"
	"github.com/spacesedan/scriptscore/internal/clients"
	"github.com/spacesedan/scriptscore/internal/hashtags"
	"github.com/spacesedan/scriptscore/internal/models"
	"github.com/spacesedan/scriptscore/internal/textutil"
)

const DefaultPlatform = "youtube_shorts"

// ChatCompleter is the collaborator boundary for the remote paths; the
// concrete OpenAI client satisfies it.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string, temperature float64) (string, error)
}

// Evaluator scores a whole script remotely in one shot. The (value, error)
// pair makes the fallback decision explicit and testable: the builder
// inspects the error, it never recovers silently.
type Evaluator interface {
	Evaluate(ctx context.Context, script string, opts Options) (models.RemoteEvaluation, error)
}

type Options struct {
	Topic          string
	Platform       string
	Trending       []string
	UseRemoteModel bool
	MaxHashtags    int
	BannedTerms    []string

	// Client and Evaluator are discovered from the environment when nil;
	// tests inject fakes here.
	Client    ChatCompleter
	Evaluator Evaluator
}

// AnalyzeScript is the single entry point. It always returns a fully
// populated report and never an error: input is normalized (absent text
// becomes the empty string) and collaborator failures are absorbed by
// the heuristic path.
func AnalyzeScript(ctx context.Context, script string, opts Options) models.Report {
	script = textutil.Normalize(script)
	if opts.Platform == "" {
		opts.Platform = DefaultPlatform
	}
	if opts.MaxHashtags <= 0 {
		opts.MaxHashtags = maxHashtagsFromEnv()
	}

	client := opts.Client
	if client == nil {
		c, err := clients.NewOpenAIClient()
		if err != nil {
			slog.Debug("[Report] No chat client available",
				slog.String("reason", err.Error()))
		} else {
			client = c
		}
	}

	if opts.UseRemoteModel {
		if remote, ok := tryRemote(ctx, script, opts, client); ok {
			return remoteReport(script, remote, opts)
		}
	}
	return heuristicReport(ctx, script, opts, client)
}

// tryRemote runs the one-shot remote evaluation and reports whether its
// result is usable. Each reject reason is logged before falling through.
func tryRemote(ctx context.Context, script string, opts Options, client ChatCompleter) (models.RemoteEvaluation, bool) {
	eval := opts.Evaluator
	if eval == nil {
		if client == nil {
			slog.Warn("[Report] Remote model requested without credentials, falling back to heuristics")
			return models.RemoteEvaluation{}, false
		}
		eval = openAIEvaluator{client: client}
	}

	remote, err := eval.Evaluate(ctx, script, opts)
	if err != nil {
		slog.Warn("[Report] Remote evaluation failed, falling back to heuristics",
			slog.String("reason", err.Error()))
		return models.RemoteEvaluation{}, false
	}
	if err := validateRemote(remote); err != nil {
		slog.Warn("[Report] Remote evaluation rejected, falling back to heuristics",
			slog.String("reason", err.Error()))
		return models.RemoteEvaluation{}, false
	}
	return remote, true
}

// remoteReport reshapes the remote evaluation into the unified report.
// Vocabulary diversity is always computed locally, never delegated.
func remoteReport(script string, remote models.RemoteEvaluation, opts Options) models.Report {
	toxLabel := remote.Toxicity.Label
	if toxLabel == "" {
		toxLabel = "safe"
	}

	// The VADER signal is local-only, like vocabulary diversity below.
	localSent := analyzers.Sentiment(script)

	return models.Report{
		Toxicity: models.ToxicityResult{
			Score: remote.Toxicity.Score,
			Hits:  []string{},
			Label: toxLabel,
		},
		Sentiment: models.SentimentResult{
			Score:         remote.Sentiment.Score,
			Label:         remote.Sentiment.Label,
			VaderCompound: localSent.VaderCompound,
			VaderLabel:    localSent.VaderLabel,
		},
		CTA: models.CTAResult{
			Present: remote.CTA.Present,
			Phrases: orEmpty(remote.CTA.Phrases),
		},
		Hook: models.HookResult{
			Score:     remote.Hook.Score,
			Rationale: remote.Hook.Rationale,
		},
		Readability: models.ReadabilityResult{
			Ease:  remote.Readability.Score,
			Level: remote.Readability.Level,
		},
		BrandSafety: models.BrandSafetyResult{
			Safe: remote.BrandSafety.Safe,
			Hits: orEmpty(remote.BrandSafety.Issues),
		},
		PlatformGuidelines: models.PlatformResult{
			Platform:      opts.Platform,
			Compliant:     remote.PlatformGuidelines.Compliant,
			Issues:        orEmpty(remote.PlatformGuidelines.Issues),
			ProfanityHits: []string{},
		},
		Vocabulary: analyzers.VocabularyDiversity(script),
		Tone: models.ToneResult{
			Label:      remote.Tone.Label,
			Candidates: []string{},
		},
		Virality: models.ViralityResult{
			Score:     remote.Virality.Score,
			Rationale: remote.Virality.Rationale,
		},
		SuggestedHashtags: hashtags.Sanitize(remote.Hashtags, opts.MaxHashtags),
	}
}

// heuristicReport runs all nine analyzers plus the hashtag engine. The
// remote hashtag strategy is used whenever a chat client exists, even on
// the heuristic path; it falls back internally.
func heuristicReport(ctx context.Context, script string, opts Options, client ChatCompleter) models.Report {
	sent := analyzers.Sentiment(script)

	var tags []string
	if client != nil {
		tags = hashtags.Remote(ctx, client, hashtags.Request{
			Script:         script,
			Topic:          opts.Topic,
			SentimentLabel: sent.Label,
			Trending:       opts.Trending,
			MaxTags:        opts.MaxHashtags,
		})
	} else {
		tags = hashtags.Heuristic(opts.Topic, sent.Label, opts.MaxHashtags)
	}

	return models.Report{
		Toxicity:           analyzers.Toxicity(script),
		Sentiment:          sent,
		CTA:                analyzers.DetectCTA(script),
		Hook:               analyzers.HookStrength(script),
		Readability:        analyzers.Readability(script),
		BrandSafety:        analyzers.BrandSafety(script, opts.BannedTerms),
		PlatformGuidelines: analyzers.PlatformGuidelines(script, opts.Platform),
		Vocabulary:         analyzers.VocabularyDiversity(script),
		Tone:               analyzers.ToneClassification(script),
		Virality:           analyzers.ViralityScore(script),
		SuggestedHashtags:  tags,
	}
}

func maxHashtagsFromEnv() int {
	if v := os.Getenv("SCRIPTSCORE_MAX_HASHTAGS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return hashtags.DefaultMaxTags
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
