package speech

import (
	"context"

	"github.com/locnguyen04/digest-flow/internal/language"
)

// Audio is a handle to a synthesized audio file. The file name carries
// the language code; the caller owns (and disposes of) the file.
type Audio struct {
	Path string
	Lang string
}

// Synthesizer produces spoken audio for a piece of text. Synthesis is
// best-effort: any backend failure resolves to nil, never an error, so
// a degraded speech backend cannot abort the pipeline.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, sel language.Selection) *Audio
}
