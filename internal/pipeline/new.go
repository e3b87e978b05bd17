package pipeline

import (
	"github.com/locnguyen04/digest-flow/internal/emotion"
	"github.com/locnguyen04/digest-flow/internal/logger"
	"github.com/locnguyen04/digest-flow/internal/speech"
	"github.com/locnguyen04/digest-flow/internal/summary"
	"github.com/locnguyen04/digest-flow/internal/translate"
)

type implPipeline struct {
	summarizer  summary.Summarizer
	classifier  emotion.Classifier
	translator  translate.Translator
	synthesizer speech.Synthesizer
	logger      logger.Logger
}

// New creates a Pipeline with explicitly injected stage backends. The
// backends are long-lived and shared read-only across requests.
func New(
	summarizer summary.Summarizer,
	classifier emotion.Classifier,
	translator translate.Translator,
	synthesizer speech.Synthesizer,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		summarizer:  summarizer,
		classifier:  classifier,
		translator:  translator,
		synthesizer: synthesizer,
		logger:      log,
	}
}
