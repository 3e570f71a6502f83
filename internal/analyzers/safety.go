package analyzers

import (
	"sort"
	"strings"

	"github.com/spacesedan/scriptscore/internal/lexicon"
	"github.com/spacesedan/scriptscore/internal/models"
	"github.com/spacesedan/scriptscore/internal/textutil"
)

// toxicitySaturationHits is the hit count at which the score pins to 1.0.
// Behavioral constant, kept as-is for output compatibility.
const toxicitySaturationHits = 3.0

// Toxicity counts tokenized words found in the toxic or profanity tables.
func Toxicity(script string) models.ToxicityResult {
	hits := []string{}
	for _, w := range textutil.Words(script) {
		if lexicon.ToxicKeywords.Has(w) || lexicon.Profanity.Has(w) {
			hits = append(hits, w)
		}
	}
	score := clamp(float64(len(hits))/toxicitySaturationHits, 0, 1)
	return models.ToxicityResult{Score: round3(score), Hits: hits}
}

// BrandSafety substring-matches the union of the profanity table and any
// caller-supplied banned terms against the lowercased script. Hits come
// back sorted and deduplicated.
func BrandSafety(script string, banned []string) models.BrandSafetyResult {
	text := strings.ToLower(script)

	terms := make(map[string]struct{}, len(banned)+len(lexicon.Profanity))
	for _, t := range banned {
		terms[strings.ToLower(t)] = struct{}{}
	}
	for _, t := range lexicon.ProfanityList() {
		terms[t] = struct{}{}
	}

	hits := []string{}
	for t := range terms {
		if t != "" && strings.Contains(text, t) {
			hits = append(hits, t)
		}
	}
	sort.Strings(hits)

	return models.BrandSafetyResult{Safe: len(hits) == 0, Hits: hits}
}

// Platform token windows for roughly 12s scripts, 25-45 words depending on pace.
const (
	shortsMinTokens  = 20
	shortsMaxTokens  = 55
	defaultMinTokens = 15
	defaultMaxTokens = 70

	maxAllCapsRatio = 0.05
)

// PlatformGuidelines checks token count, shouting ratio, and profanity
// against the target platform's limits. Every unrecognized platform id
// gets the default window.
func PlatformGuidelines(script, platform string) models.PlatformResult {
	words := textutil.Words(script)
	tokens := len(words)

	denom := tokens
	if denom < 1 {
		denom = 1
	}
	capsRatio := float64(len(textutil.AllCapsWords(script))) / float64(denom)

	profanityHits := []string{}
	for _, w := range words {
		if lexicon.Profanity.Has(w) {
			profanityHits = append(profanityHits, w)
		}
	}

	minTokens, maxTokens := defaultMinTokens, defaultMaxTokens
	if platform == "youtube_shorts" {
		minTokens, maxTokens = shortsMinTokens, shortsMaxTokens
	}

	withinLength := tokens >= minTokens && tokens <= maxTokens
	minimalCaps := capsRatio < maxAllCapsRatio
	noProfanity := len(profanityHits) == 0

	return models.PlatformResult{
		Platform:      platform,
		Compliant:     withinLength && minimalCaps && noProfanity,
		LengthTokens:  tokens,
		WithinLength:  withinLength,
		AllCapsRatio:  round3(capsRatio),
		MinimalCaps:   minimalCaps,
		ProfanityHits: profanityHits,
		NoProfanity:   noProfanity,
	}
}
