// Package lexicon holds the fixed marker-word tables the analyzers match
// against. All tables are built once at init and never mutated, so they
// are safe to share across report builds.
package lexicon

// WordSet is membership-tested against single lowercased tokens.
type WordSet map[string]struct{}

func (s WordSet) Has(w string) bool {
	_, ok := s[w]
	return ok
}

func newWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Phrase tables are substring-matched against lowercased text, in the
// order listed, so hit lists come out deterministic.

var PowerHooks = []string{
	"what if", "did you know", "here's why", "stop", "warning",
	"the secret", "nobody tells you", "don't make this mistake",
	"3 things", "top 5", "you won't believe", "the truth",
}

var CTAPhrases = []string{
	"subscribe", "follow", "like this", "comment", "share",
	"click the link", "link in bio", "check the description",
	"try this", "save this", "watch till the end",
}

// Placeholder keyword list; a real moderation service would replace it.
var ToxicKeywords = newWordSet(
	"idiot", "stupid", "dumb", "hate", "kill", "trash", "loser",
	"shut up", "moron", "racist", "sexist", "terrorist",
)

var Profanity = newWordSet(
	"fuck", "shit", "bitch", "asshole", "bastard", "dick", "cunt",
)

var PositiveWords = newWordSet(
	"amazing", "great", "awesome", "love", "win", "success", "powerful",
	"easy", "simple", "best", "boost", "growth", "viral", "smart",
)

var NegativeWords = newWordSet(
	"bad", "worst", "hate", "fail", "hard", "problem", "risk",
	"danger", "scam", "loss", "decline",
)

// ProfanityList returns the profanity table as a slice, for callers that
// substring-match rather than token-match.
func ProfanityList() []string {
	out := make([]string, 0, len(Profanity))
	for w := range Profanity {
		out = append(out, w)
	}
	return out
}
