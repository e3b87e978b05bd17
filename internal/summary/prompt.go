package summary

import "fmt"

const summaryPrompt = `You are a precise text condensation engine. Summarize the text below in %d to %d words.

Rules:
- Keep the original language of the text
- Preserve the key facts and their order
- Plain prose only: no headings, bullets, or preamble
- Return the summary text and nothing else

Text:
---
%s
---`

// buildPrompt renders the deterministic summarization prompt with the
// caller's word bounds.
func buildPrompt(text string, bounds Bounds) string {
	return fmt.Sprintf(summaryPrompt, bounds.MinWords, bounds.MaxWords, text)
}
