package ai

import (
	"regexp"
	"strings"
)

var (
	codeBlockRe = regexp.MustCompile("```[\\s\\S]*?```")
	boldRe      = regexp.MustCompile(`\*\*`)
	italicRe    = regexp.MustCompile(`__|_`)
	backtickRe  = regexp.MustCompile("`")
	commentRe   = regexp.MustCompile(`//.*`)
	headerRe    = regexp.MustCompile(`#+\s?`)
	newlinesRe  = regexp.MustCompile(`\n{3,}`)
)

// CleanCompletion strips markdown decoration from a model completion before
// it is persisted and returned, keeping answers presentable as plain text.
func CleanCompletion(s string) string {
	s = codeBlockRe.ReplaceAllString(s, "")
	s = boldRe.ReplaceAllString(s, "")
	s = italicRe.ReplaceAllString(s, "")
	s = backtickRe.ReplaceAllString(s, "")
	s = commentRe.ReplaceAllString(s, "")
	s = headerRe.ReplaceAllString(s, "")
	s = newlinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
