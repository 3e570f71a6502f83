package analyzers

import (
	"math"

	"github.com/spacesedan/scriptscore/internal/models"
)

// Fixed linear blend, not learned; placeholder until a trained model is
// available. Weights sum to 1.0.
const (
	weightHook        = 0.25
	weightSentiment   = 0.20
	weightCTA         = 0.15
	weightReadability = 0.20
	weightVocabulary  = 0.15
	weightToxicity    = 0.05
)

// ViralityScore blends the component scores into a single 0-100 integer.
// Sentiment is remapped from [-1,1] to [0,1] before weighting; toxicity
// contributes inverted.
func ViralityScore(script string) models.ViralityResult {
	hook := HookStrength(script).Score
	sent := Sentiment(script).Score
	read := Readability(script).Ease
	vocab := VocabularyDiversity(script).Diversity
	tox := Toxicity(script).Score

	cta := 0.0
	if DetectCTA(script).Present {
		cta = 1.0
	}

	base := weightHook*hook +
		weightSentiment*(0.5+0.5*sent) +
		weightCTA*cta +
		weightReadability*read +
		weightVocabulary*vocab +
		weightToxicity*(1.0-tox)

	return models.ViralityResult{Score: int(math.Round(clamp(base, 0, 1) * 100))}
}
