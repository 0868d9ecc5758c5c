package extract

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	punctRe      = regexp.MustCompile(`([:\-,])`)
)

// Normalize prepares raw document text for pattern matching: uppercase,
// collapsed whitespace, and spacing inserted around ':', '-' and ',' so that
// adjacent tokens match regardless of the source formatting. Pure function.
func Normalize(text string) string {
	text = strings.ToUpper(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = punctRe.ReplaceAllString(text, " $1 ")
	return text
}
