package summary

import "context"

// Bounds limits the summary length in words. Min must stay below Max.
type Bounds struct {
	MinWords int
	MaxWords int
}

// Summarizer condenses free-form text into a bounded summary.
// This is the one mandatory pipeline stage: errors are fatal to the request.
type Summarizer interface {
	Summarize(ctx context.Context, text string, bounds Bounds) (string, error)
}
