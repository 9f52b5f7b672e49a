package jsonutils

import (
	"regexp"
	"strings"
)

var (
	reFence         = regexp.MustCompile("(?s)```json(.*?)```")
	reObj           = regexp.MustCompile(`(?s)\{.*\}`)
	reTrailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

// ExtractJSON tries to extract a JSON object from LLM output.
//
// Priority:
// 1. Triple-backtick fenced ```json ... ```
// 2. Any {...} JSON object
//
// It also strips invisible Unicode characters and trailing commas, both
// common model formatting slips. It deliberately does not rewrite escape
// sequences: that would corrupt valid JSON strings.
func ExtractJSON(input string) string {
	input = strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\ufeff' || r == '\u200b' || r == '\u200c' || r == '\u200d' {
			return -1 // skip
		}
		return r
	}, input))

	if match := reFence.FindStringSubmatch(input); len(match) > 1 {
		input = strings.TrimSpace(match[1])
	} else if match := reObj.FindString(input); match != "" {
		input = strings.TrimSpace(match)
	}

	input = reTrailingComma.ReplaceAllString(input, "$1")

	return strings.TrimSpace(input)
}
