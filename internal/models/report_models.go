package models

// Analyzer results share no schema beyond "scores are clamped to their
// documented range"; each carries its own fields.

type ToxicityResult struct {
	Score float64  `json:"score"`
	Hits  []string `json:"hits"`
	Label string   `json:"label,omitempty"`
}

type SentimentResult struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
	Pos   int     `json:"pos"`
	Neg   int     `json:"neg"`
	// Auxiliary VADER signal; the documented label above always follows
	// the lexicon formula, not the compound.
	VaderCompound float64 `json:"vader_compound"`
	VaderLabel    string  `json:"vader_label"`
}

type CTAResult struct {
	Present bool     `json:"present"`
	Phrases []string `json:"phrases"`
}

type HookResult struct {
	Score         float64 `json:"score"`
	FirstSentence string  `json:"first_sentence"`
	PowerHits     int     `json:"power_hits"`
	Rationale     string  `json:"rationale,omitempty"`
}

type ReadabilityResult struct {
	Ease                float64 `json:"ease"`
	Level               string  `json:"level"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgCharsPerWord     float64 `json:"avg_chars_per_word"`
}

type BrandSafetyResult struct {
	Safe bool     `json:"safe"`
	Hits []string `json:"hits"`
}

type PlatformResult struct {
	Platform      string   `json:"platform"`
	Compliant     bool     `json:"compliant"`
	LengthTokens  int      `json:"length_tokens"`
	WithinLength  bool     `json:"within_length"`
	AllCapsRatio  float64  `json:"all_caps_ratio"`
	MinimalCaps   bool     `json:"minimal_caps"`
	ProfanityHits []string `json:"profanity_hits"`
	NoProfanity   bool     `json:"no_profanity"`
	// Issues is only populated by the remote-model path.
	Issues []string `json:"issues,omitempty"`
}

type VocabularyResult struct {
	Diversity float64 `json:"diversity"`
	Unique    int     `json:"unique"`
	Total     int     `json:"total"`
}

type ToneResult struct {
	Label      string   `json:"label"`
	Candidates []string `json:"candidates"`
}

type ViralityResult struct {
	Score     int    `json:"score"`
	Rationale string `json:"rationale,omitempty"`
}

// Report is the unified output for one script evaluation. Both the
// heuristic and the remote-model paths produce this exact shape.
type Report struct {
	Toxicity           ToxicityResult    `json:"toxicity"`
	Sentiment          SentimentResult   `json:"sentiment"`
	CTA                CTAResult         `json:"cta"`
	Hook               HookResult        `json:"hook"`
	Readability        ReadabilityResult `json:"readability"`
	BrandSafety        BrandSafetyResult `json:"brand_safety"`
	PlatformGuidelines PlatformResult    `json:"platform_guidelines"`
	Vocabulary         VocabularyResult  `json:"vocabulary"`
	Tone               ToneResult        `json:"tone"`
	Virality           ViralityResult    `json:"virality"`
	SuggestedHashtags  []string          `json:"suggested_hashtags"`
}
