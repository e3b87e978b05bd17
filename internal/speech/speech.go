package speech

import (
	"context"
	"os"
	"strings"

	"github.com/locnguyen04/digest-flow/internal/language"
)

// Synthesize renders the text as audio in the selected language,
// defaulting to English when no language is requested. Empty text and
// backend failures both resolve to nil.
func (s *implSynthesizer) Synthesize(ctx context.Context, text string, sel language.Selection) *Audio {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	code := sel.Code()
	if code == "" {
		code = "en"
	}

	out, err := os.CreateTemp(s.tempDir, "speech-*_"+code+s.engine.ext())
	if err != nil {
		s.logger.Warn(ctx, "Failed to create audio file: %v", err)
		return nil
	}
	path := out.Name()
	out.Close()

	if err := s.engine.render(ctx, text, code, path); err != nil {
		s.logger.Warn(ctx, "Speech synthesis failed (%s): %v", code, err)
		os.Remove(path)
		return nil
	}

	s.logger.Debug(ctx, "Synthesized audio: %s", path)
	return &Audio{Path: path, Lang: code}
}
