package ocr

import (
	"regexp"
)

// PII categories reported by the redaction layers
const (
	PIICategoryEmail = "email"
	PIICategorySSN   = "ssn"
	PIICategoryCard  = "card_number"
	PIICategoryPhone = "phone"
)

// Structured PII is caught by pattern matching before any text leaves this
// package; the contextual LLM pass catches what patterns cannot.
var piiPatterns = []struct {
	category    string
	pattern     *regexp.Regexp
	replacement string
}{
	{
		category:    PIICategoryEmail,
		pattern:     regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
		replacement: "[REDACTED_EMAIL]",
	},
	{
		category:    PIICategorySSN,
		pattern:     regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		replacement: "[REDACTED_SSN]",
	},
	{
		category:    PIICategoryCard,
		pattern:     regexp.MustCompile(`\b(?:\d[ \-]?){13,16}\b`),
		replacement: "[REDACTED_CARD]",
	},
	{
		category:    PIICategoryPhone,
		pattern:     regexp.MustCompile(`\b(?:\+?1[ .\-]?)?\(?\d{3}\)?[ .\-]\d{3}[ .\-]\d{4}\b`),
		replacement: "[REDACTED_PHONE]",
	},
}

// redactPatterns masks structured PII and returns the cleaned text plus the
// categories that were found
func redactPatterns(text string) (string, []string) {
	var categories []string
	for _, p := range piiPatterns {
		if p.pattern.MatchString(text) {
			categories = append(categories, p.category)
			text = p.pattern.ReplaceAllString(text, p.replacement)
		}
	}
	return text, categories
}
