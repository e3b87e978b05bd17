package emotion

import "context"

// Classifier returns the dominant emotion label for a piece of text.
type Classifier interface {
	Classify(ctx context.Context, text string) (Label, error)
}
