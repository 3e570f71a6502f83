package analyzers

import (
	"github.com/spacesedan/scriptscore/internal/models"
	"github.com/spacesedan/scriptscore/internal/textutil"
)

// Readability is a crude proxy: shorter sentences and shorter words read
// easier. ease = clamp(1.2 - avgWords/25 - avgChars/8, 0, 1).
func Readability(script string) models.ReadabilityResult {
	words := textutil.Words(script)
	sentences := textutil.Sentences(script)

	numWords := len(words)
	if numWords < 1 {
		numWords = 1
	}
	numSentences := len(sentences)
	if numSentences < 1 {
		numSentences = 1
	}

	chars := 0
	for _, w := range words {
		chars += len(w)
	}
	avgWordsPerSentence := float64(numWords) / float64(numSentences)
	avgCharsPerWord := float64(chars) / float64(numWords)

	ease := clamp(1.2-avgWordsPerSentence/25.0-avgCharsPerWord/8.0, 0, 1)

	level := "hard"
	switch {
	case ease > 0.66:
		level = "easy"
	case ease > 0.33:
		level = "medium"
	}

	return models.ReadabilityResult{
		Ease:                round3(ease),
		Level:               level,
		AvgWordsPerSentence: round2(avgWordsPerSentence),
		AvgCharsPerWord:     round2(avgCharsPerWord),
	}
}

// VocabularyDiversity is unique/total over purely alphabetic tokens
// (numbers and apostrophe words excluded), case-folded.
func VocabularyDiversity(script string) models.VocabularyResult {
	seen := make(map[string]struct{})
	total := 0
	for _, w := range textutil.Words(script) {
		if !isAlpha(w) {
			continue
		}
		total++
		seen[w] = struct{}{}
	}

	denom := total
	if denom < 1 {
		denom = 1
	}
	diversity := float64(len(seen)) / float64(denom)

	return models.VocabularyResult{
		Diversity: round3(diversity),
		Unique:    len(seen),
		Total:     total,
	}
}

func isAlpha(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
