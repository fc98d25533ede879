package nlp

import (
	"context"
	"regexp"
	"strings"
)

// PatternExtractor recognizes date spans with local pattern matching. It is
// the default extractor when no Gemini API key is configured, covering the
// date shapes the dialog platform actually produces: ISO timestamps and
// calendar dates, month-name forms, and common relative expressions.
type PatternExtractor struct{}

// NewPatternExtractor creates a local pattern-based date extractor.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

var datePatterns = []*regexp.Regexp{
	// ISO timestamp with optional offset, e.g. 2063-05-04T10:00:00+08:00
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:[+-]\d{2}:\d{2}|Z)?`),
	// ISO calendar date, e.g. 2063-05-04
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	// Day-first or month-first month-name forms, e.g. 4 May 2063, May 4th
	regexp.MustCompile(`(?i)\b(?:\d{1,2}(?:st|nd|rd|th)?\s+)?(?:january|february|march|april|may|june|july|august|september|october|november|december)(?:\s+\d{1,2}(?:st|nd|rd|th)?)?(?:,?\s+\d{4})?\b`),
	// Slash-separated dates, e.g. 04/05/2063
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	// Relative expressions the agent's users tend to type
	regexp.MustCompile(`(?i)\b(?:today|tomorrow|tonight|next\s+(?:week|month|monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`),
}

func (p *PatternExtractor) ExtractDate(ctx context.Context, text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	for _, pattern := range datePatterns {
		if match := pattern.FindString(text); match != "" {
			return match, true
		}
	}
	return "", false
}
