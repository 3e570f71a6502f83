// Package hashtags suggests and sanitizes hashtag lists. Two strategies
// exist behind the same request shape: a static heuristic and a remote
// chat-model call that degrades to the heuristic on any failure. Output
// passes through Sanitize regardless of strategy.
package hashtags

import (
	"regexp"
	"strings"
)

const DefaultMaxTags = 6

type Request struct {
	Script         string
	Topic          string
	SentimentLabel string
	Trending       []string
	MaxTags        int
}

var (
	reSpace    = regexp.MustCompile(`\s+`)
	reBadChars = regexp.MustCompile(`[^A-Za-z0-9_]+`)
)

// Sanitize normalizes every candidate: trim, force a leading '#', strip
// whitespace and anything outside [A-Za-z0-9_] after the '#', drop tags
// of length <= 1, dedupe case-insensitively first-seen, cap at maxTags.
// Sanitizing an already-sanitized list is a no-op.
func Sanitize(tags []string, maxTags int) []string {
	if maxTags <= 0 {
		maxTags = DefaultMaxTags
	}

	cleaned := []string{}
	seen := make(map[string]struct{})
	for _, tag := range tags {
		t := strings.TrimSpace(tag)
		if t == "" {
			continue
		}
		if !strings.HasPrefix(t, "#") {
			t = "#" + t
		}
		t = reSpace.ReplaceAllString(t, "")
		t = "#" + reBadChars.ReplaceAllString(strings.TrimLeft(t, "#"), "")
		if len(t) <= 1 {
			continue
		}
		key := strings.ToLower(t)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, t)
		if len(cleaned) >= maxTags {
			break
		}
	}
	return cleaned
}

// Heuristic seeds broad short-form tags, a topic tag, and a pair keyed to
// the sentiment label, already sanitized and capped.
func Heuristic(topic, sentimentLabel string, maxTags int) []string {
	base := []string{"#Shorts", "#viral", "#fyp"}

	if cleaned := reSpace.ReplaceAllString(topic, ""); cleaned != "" {
		base = append(base, "#"+cleaned)
	}

	switch sentimentLabel {
	case "positive":
		base = append(base, "#growth", "#success")
	case "negative":
		base = append(base, "#lessons", "#truth")
	default:
		base = append(base, "#learn", "#tips")
	}

	return Sanitize(base, maxTags)
}
