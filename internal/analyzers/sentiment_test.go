package analyzers

import "testing"

func TestSentiment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		script    string
		wantLabel string
		wantScore float64
		wantPos   int
		wantNeg   int
	}{
		{"empty is neutral", "", "neutral", 0, 0, 0},
		{"no lexicon words", "the quiet brown fox", "neutral", 0, 0, 0},
		{"all positive", "amazing great love", "positive", 1, 3, 0},
		{"all negative", "bad worst fail", "negative", -1, 0, 3},
		{"balanced is neutral", "amazing bad", "neutral", 0, 1, 1},
		{"slightly positive", "amazing great bad", "positive", 0.333, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sentiment(tc.script)
			if got.Label != tc.wantLabel {
				t.Fatalf("label = %q, want %q", got.Label, tc.wantLabel)
			}
			if got.Score != tc.wantScore {
				t.Fatalf("score = %v, want %v", got.Score, tc.wantScore)
			}
			if got.Pos != tc.wantPos || got.Neg != tc.wantNeg {
				t.Fatalf("pos/neg = %d/%d, want %d/%d", got.Pos, got.Neg, tc.wantPos, tc.wantNeg)
			}
		})
	}
}

// The label bands are exact: positive above 0.15, negative below -0.15.
func TestSentiment_LabelBands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		script    string
		wantLabel string
	}{
		// pos=7 neg=5: score 2/12 = 0.167 > 0.15
		{"just above threshold", "amazing great love win easy simple best bad worst fail problem risk", "positive"},
		// pos=4 neg=3: score 1/7 = 0.143 <= 0.15
		{"just below threshold", "amazing great love win bad worst fail", "neutral"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sentiment(tc.script); got.Label != tc.wantLabel {
				t.Fatalf("label = %q (score %v), want %q", got.Label, got.Score, tc.wantLabel)
			}
		})
	}
}

func TestSentiment_VaderSignal(t *testing.T) {
	t.Parallel()

	got := Sentiment("This is absolutely amazing, I love it!")
	switch got.VaderLabel {
	case "positive", "neutral", "negative":
	default:
		t.Fatalf("unexpected vader label %q", got.VaderLabel)
	}
	if got.VaderCompound < -1 || got.VaderCompound > 1 {
		t.Fatalf("vader compound %v out of range", got.VaderCompound)
	}
	// The documented label comes from the lexicon formula alone.
	if got.Label != "positive" {
		t.Fatalf("label = %q, want positive", got.Label)
	}
}
