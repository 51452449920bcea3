package competition

import (
	"strings"

	"golang.org/x/text/cases"
)

// Highlighter flags records that belong to the tracked club.
// The zero value never highlights anything.
type Highlighter struct {
	token string
}

// NewHighlighter creates a Highlighter for the given club-name token
func NewHighlighter(token string) Highlighter {
	return Highlighter{token: fold(strings.TrimSpace(token))}
}

// Match reports whether text contains the token, ignoring case
func (h Highlighter) Match(text string) bool {
	if h.token == "" {
		return false
	}
	return strings.Contains(fold(text), h.token)
}

// MatchAny reports whether any of the texts contains the token
func (h Highlighter) MatchAny(texts ...string) bool {
	for _, t := range texts {
		if h.Match(t) {
			return true
		}
	}
	return false
}

// Token returns the folded token
func (h Highlighter) Token() string {
	return h.token
}

// fold builds a new Caser per call; a Caser is stateful and must not be shared across goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}
