// Package textutil has the pure text primitives every analyzer consumes:
// whitespace normalization, word tokenization, and sentence splitting.
package textutil

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	reSpace    = regexp.MustCompile(`\s+`)
	reWord     = regexp.MustCompile(`[a-zA-Z0-9']+`)
	reSentence = regexp.MustCompile(`[.!?]+`)
	reAllCaps  = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	reHTMLTag  = regexp.MustCompile(`<[^>]+>`)
	reMDLink   = regexp.MustCompile(`\[(.*?)\]\(https?://[^\s)]+\)`)
	reBareURL  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// Normalize collapses whitespace runs to a single space and trims the
// ends. Never fails; empty input yields "".
func Normalize(text string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(text, " "))
}

// Words returns the lowercased alphanumeric+apostrophe runs of text, in
// original order, duplicates kept.
func Words(text string) []string {
	return reWord.FindAllString(strings.ToLower(text), -1)
}

// Sentences splits on runs of `.`, `!`, `?`, trims each piece, and drops
// empty pieces.
func Sentences(text string) []string {
	var out []string
	for _, s := range reSentence.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AllCapsWords returns the words of text written entirely in capitals,
// case preserved (tokenized separately from Words on purpose).
func AllCapsWords(text string) []string {
	return reAllCaps.FindAllString(text, -1)
}

// Excerpt returns the first n runes of text.
func Excerpt(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n])
}

// RemoveLinks keeps the anchor text of markdown links and strips bare URLs.
func RemoveLinks(text string) string {
	text = reMDLink.ReplaceAllString(text, "$1")
	return reBareURL.ReplaceAllString(text, "")
}

// PlainText renders markdown and strips the resulting markup, leaving
// whitespace-normalized prose for the analyzers.
func PlainText(markdown string) string {
	rendered := blackfriday.Run([]byte(markdown), blackfriday.WithNoExtensions())
	stripped := reHTMLTag.ReplaceAllString(string(rendered), " ")
	return Normalize(RemoveLinks(stripped))
}
