// Package quiz recovers structured question/answer pairs from an unstructured
// model completion. Completions rarely honor the requested format exactly, so
// parsing is tolerant by design and never fails: malformed input degrades to
// an empty result, which the caller renders as "no questions generated".
package quiz

import (
	"regexp"
	"strings"
)

// Item is one parsed question/answer pair, in document order.
type Item struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var (
	// Question/answer line markers, tolerant of numbering, bold and list
	// decoration: "Q1:", "**Question 2 -**", "A:", "Answer 3."... A separator
	// after the marker word is required so a line like "Quiz time" or
	// "Algorithms are..." is not mistaken for a marker.
	questionMarker = regexp.MustCompile(`(?i)^[\s*#>_-]*(?:question|q)\s*\d*\s*[:.)\-]\s*(.*)$`)
	answerMarker   = regexp.MustCompile(`(?i)^[\s*#>_-]*(?:answer|a)\s*\d*\s*[:.)\-]\s*(.*)$`)

	numberedSplit = regexp.MustCompile(`\d+\.\s*`)
	answerSplit   = regexp.MustCompile(`(?i)Answer\s*[:\-]`)
)

// Parse extracts question/answer pairs from raw. The tolerant line scan runs
// first; only when it yields zero pairs does the numbered-list fallback run.
// Output order equals input order.
func Parse(raw string) []Item {
	items := parseMarkers(raw)
	if len(items) == 0 {
		items = parseNumbered(raw)
	}
	return items
}

// parseMarkers scans line by line for the repeating unit of a question marker
// followed by an answer marker. The question is the remainder of its marker
// line; the answer accumulates until the next question marker or end of
// input.
func parseMarkers(raw string) []Item {
	var (
		items     []Item
		question  string
		answer    []string
		inAnswer  bool
		hasActive bool
	)

	flush := func() {
		if hasActive && question != "" {
			a := strings.TrimSpace(strings.Join(answer, "\n"))
			if a != "" {
				items = append(items, Item{Question: question, Answer: a})
			}
		}
		question, answer, inAnswer, hasActive = "", nil, false, false
	}

	for _, line := range strings.Split(raw, "\n") {
		if m := questionMarker.FindStringSubmatch(line); m != nil {
			flush()
			question = cleanFragment(m[1])
			hasActive = true
			continue
		}
		if !hasActive {
			continue
		}
		if m := answerMarker.FindStringSubmatch(line); m != nil && !inAnswer {
			inAnswer = true
			answer = append(answer, cleanFragment(m[1]))
			continue
		}
		if inAnswer {
			answer = append(answer, strings.TrimSpace(line))
		} else if s := strings.TrimSpace(line); s != "" {
			// wrapped question text before the answer line
			question = strings.TrimSpace(question + " " + cleanFragment(s))
		}
	}
	flush()

	return items
}

// parseNumbered is the best-effort fallback: split on numbered-list markers,
// then split each segment on an "Answer:" marker. A segment that does not
// yield exactly two non-empty halves is discarded. Known fragility: a question
// body containing the word "Answer" can mispair, which is why this path only
// runs when the marker scan found nothing.
func parseNumbered(raw string) []Item {
	var items []Item
	for _, segment := range numberedSplit.Split(raw, -1) {
		halves := answerSplit.Split(segment, 2)
		if len(halves) != 2 {
			continue
		}
		q := cleanFragment(halves[0])
		a := cleanFragment(halves[1])
		if q == "" || a == "" {
			continue
		}
		items = append(items, Item{Question: q, Answer: a})
	}
	return items
}

func cleanFragment(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "*_#"))
}
