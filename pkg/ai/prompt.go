package ai

import (
	"fmt"
	"strings"
)

// Passage is one ranked chunk destined for the model context block.
type Passage struct {
	PageNumber int
	Text       string
}

const contextDelimiter = "\n---\n"

const qaPromptTemplate = `You are an intelligent study assistant. Use the context below to answer the question accurately and cite relevant pages.

Context:
%s

Question: %s

Answer:`

const quizPromptTemplate = `You are a professional quiz generator.

Generate a quiz based strictly on the core concepts and topics covered in the uploaded workspace material.
Avoid administrative or irrelevant questions (e.g., about submission dates, file names, or formatting instructions).

The quiz should include a balanced mix of:
- Easy questions that test key definitions and basic understanding
- Medium questions that require short reasoning or explanations
- Hard questions that require analysis, comparison, or application of concepts

Randomly decide the total number of questions (between 8 and 12)
and adjust the difficulty mix dynamically depending on the document content.

Each question MUST be followed by its correct answer.
Follow this exact format strictly:

Q1: [Question text]
A1: [Answer text]
Q2: [Question text]
A2: [Answer text]
...

Keep questions clear, concise, and based only on the provided content.

Context:
%s
`

// BuildContextBlock concatenates ranked passages as "Page {n}: {text}"
// separated by a fixed delimiter line.
func BuildContextBlock(passages []Passage) string {
	parts := make([]string, 0, len(passages))
	for _, p := range passages {
		parts = append(parts, fmt.Sprintf("Page %d: %s", p.PageNumber, p.Text))
	}
	return strings.Join(parts, contextDelimiter)
}

func BuildQAPrompt(contextBlock, question string) string {
	return fmt.Sprintf(qaPromptTemplate, contextBlock, question)
}

func BuildQuizPrompt(contextBlock string) string {
	return fmt.Sprintf(quizPromptTemplate, contextBlock)
}
