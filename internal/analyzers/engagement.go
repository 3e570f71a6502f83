package analyzers

import (
	"strings"

	"github.com/spacesedan/scriptscore/internal/lexicon"
	"github.com/spacesedan/scriptscore/internal/models"
	"github.com/spacesedan/scriptscore/internal/textutil"
)

// DetectCTA substring-matches each call-to-action phrase against the
// lowercased script.
func DetectCTA(script string) models.CTAResult {
	text := strings.ToLower(script)
	phrases := []string{}
	for _, p := range lexicon.CTAPhrases {
		if strings.Contains(text, p) {
			phrases = append(phrases, p)
		}
	}
	return models.CTAResult{Present: len(phrases) > 0, Phrases: phrases}
}

// HookStrength scores the first sentence only. Short punchy hooks with a
// power phrase do best; the length tiers (4-16, <=24) are behavioral
// constants kept for output compatibility.
func HookStrength(script string) models.HookResult {
	first := ""
	if sentences := textutil.Sentences(script); len(sentences) > 0 {
		first = strings.ToLower(sentences[0])
	}

	powerHits := 0
	for _, p := range lexicon.PowerHooks {
		if strings.Contains(first, p) {
			powerHits++
		}
	}

	lengthWords := len(textutil.Words(first))
	lengthScore := 0.2
	switch {
	case lengthWords >= 4 && lengthWords <= 16:
		lengthScore = 1.0
	case lengthWords <= 24:
		lengthScore = 0.5
	}

	power := 0.0
	if powerHits > 0 {
		power = 1.0
	}
	score := clamp(0.6*lengthScore+0.4*power, 0, 1)

	return models.HookResult{
		Score:         round3(score),
		FirstSentence: first,
		PowerHits:     powerHits,
	}
}

// Tone groups, checked in fixed precedence order. The precedence is part
// of the documented behavior; ties always resolve to the earlier label.
var toneGroups = []struct {
	label   string
	phrases []string
}{
	{"persuasive", []string{"you", "now", "today", "must", "need to", "cta"}},
	{"informative", []string{"how to", "steps", "tip", "learn", "guide", "why"}},
	{"entertaining", []string{"funny", "joke", "crazy", "wild", "insane", "wow"}},
	{"story", []string{"story", "once", "i was", "we were", "learned"}},
}

// ToneClassification labels the script by the first tone group with any
// phrase present, else "neutral". Candidates lists every active group.
func ToneClassification(script string) models.ToneResult {
	text := strings.ToLower(script)

	candidates := []string{}
	for _, g := range toneGroups {
		for _, p := range g.phrases {
			if strings.Contains(text, p) {
				candidates = append(candidates, g.label)
				break
			}
		}
	}

	label := "neutral"
	if len(candidates) > 0 {
		label = candidates[0]
	}
	return models.ToneResult{Label: label, Candidates: candidates}
}
