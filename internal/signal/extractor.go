// Package signal extracts text signals (mentions, keywords, tags) from
// forum post bodies. All functions are pure over the provided text;
// run-scoped counts live in an explicit Accumulator.
package signal

import (
	"regexp"
	"strings"
)

var (
	tagRe     = regexp.MustCompile(`<[^>]+>`)
	mentionRe = regexp.MustCompile(`@(\w+)`)
	nonWordRe = regexp.MustCompile(`[^\w\s]`)
)

// StripTags replaces every HTML tag span with a single space, so words
// separated only by tag boundaries do not run together.
func StripTags(html string) string {
	return tagRe.ReplaceAllString(html, " ")
}

// Mentions returns every @username occurrence in the given plain text,
// one entry per occurrence.
func Mentions(text string) []string {
	matches := mentionRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	mentions := make([]string, 0, len(matches))
	for _, m := range matches {
		mentions = append(mentions, m[1])
	}
	return mentions
}

// Keywords tokenizes plain text and keeps the meaningful tokens.
// Stopwords are dropped first, unconditionally. A surviving token counts
// if it is an allowlisted technical term (any length) or longer than four
// characters.
func Keywords(text string) []string {
	text = nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	var keywords []string
	for _, token := range strings.Fields(text) {
		if _, ok := stopwords[token]; ok {
			continue
		}
		if _, ok := technicalTerms[token]; ok || len(token) > 4 {
			keywords = append(keywords, token)
		}
	}
	return keywords
}
