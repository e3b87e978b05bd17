package summary

import (
	"fmt"

	"github.com/locnguyen04/digest-flow/internal/logger"
)

// Options selects and configures a summarization backend.
type Options struct {
	Provider string // gemini | openai
	Model    string
	APIKeys  []string // gemini rotates across these on quota errors
	BaseURL  string   // optional OpenAI-compatible endpoint
}

// New creates a Summarizer for the configured provider.
func New(opts Options, log logger.Logger) (Summarizer, error) {
	if len(opts.APIKeys) == 0 {
		return nil, fmt.Errorf("summarizer requires at least one API key")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("summarizer model is required")
	}

	switch opts.Provider {
	case "gemini":
		return &geminiSummarizer{
			apiKeys: opts.APIKeys,
			model:   opts.Model,
			logger:  log,
		}, nil
	case "openai":
		return newOpenAISummarizer(opts, log)
	default:
		return nil, fmt.Errorf("summarizer provider %q not supported", opts.Provider)
	}
}
