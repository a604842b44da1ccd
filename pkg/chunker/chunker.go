// Package chunker splits extracted page text into bounded word windows, the
// unit of embedding and retrieval.
package chunker

import "strings"

const DefaultMaxWords = 500

// Split cuts text on runs of whitespace and regroups the words into
// consecutive non-overlapping windows of at most maxWords words each, rejoined
// with single spaces. The final window may be shorter. Whitespace-only input
// yields no chunks.
func Split(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for i := 0; i < len(words); i += maxWords {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}
