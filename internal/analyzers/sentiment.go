package analyzers

import (
	"github.com/jonreiter/govader"

	"github.com/spacesedan/scriptscore/internal/lexicon"
	"github.com/spacesedan/scriptscore/internal/models"
	"github.com/spacesedan/scriptscore/internal/textutil"
)

var vader = govader.NewSentimentIntensityAnalyzer()

// Sentiment counts positive/negative lexicon words. score = (pos-neg)/max(1,pos+neg);
// label is positive above 0.15, negative below -0.15, neutral between.
// The VADER compound rides along as an extra signal and never affects the label.
func Sentiment(script string) models.SentimentResult {
	var pos, neg int
	for _, w := range textutil.Words(script) {
		if lexicon.PositiveWords.Has(w) {
			pos++
		}
		if lexicon.NegativeWords.Has(w) {
			neg++
		}
	}
	total := pos + neg
	if total < 1 {
		total = 1
	}
	score := float64(pos-neg) / float64(total)

	label := "neutral"
	switch {
	case score > 0.15:
		label = "positive"
	case score < -0.15:
		label = "negative"
	}

	compound, vaderLabel := vaderSignal(script)

	return models.SentimentResult{
		Score:         round3(score),
		Label:         label,
		Pos:           pos,
		Neg:           neg,
		VaderCompound: round3(compound),
		VaderLabel:    vaderLabel,
	}
}

func vaderSignal(text string) (float64, string) {
	compound := vader.PolarityScores(text).Compound
	switch {
	case compound >= 0.20:
		return compound, "positive"
	case compound <= -0.20:
		return compound, "negative"
	default:
		return compound, "neutral"
	}
}
