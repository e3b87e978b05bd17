package pipeline

import (
	"context"

	"github.com/locnguyen04/digest-flow/internal/language"
	"github.com/locnguyen04/digest-flow/internal/speech"
	"github.com/locnguyen04/digest-flow/internal/summary"
)

// Request is one stateless transformation request.
type Request struct {
	Text   string
	Target language.Selection
	Bounds summary.Bounds
}

// Result is the fixed six-field bundle every successful request returns.
// Audio fields are nil when synthesis was skipped or failed; text fields
// are never omitted.
type Result struct {
	DisplaySummary string
	EnglishAudio   *speech.Audio
	TargetAudio    *speech.Audio
	EnglishSummary string
	TargetSummary  string
	SignMarkup     string
}

// Pipeline runs the full summarize → classify → translate → synthesize →
// visualize transformation.
type Pipeline interface {
	Run(ctx context.Context, req Request) (*Result, error)
}
