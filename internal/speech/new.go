package speech

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/locnguyen04/digest-flow/internal/logger"
	"github.com/locnguyen04/digest-flow/pkg/executor"
)

// engine renders text in the given language into an audio file.
type engine interface {
	render(ctx context.Context, text, code, outPath string) error
	ext() string
}

// Options configures the synthesis backend.
type Options struct {
	Engine     string // google | espeak
	Endpoint   string // google engine TTS endpoint
	BinaryPath string // espeak engine binary
	TempDir    string // "" means the system temp dir
}

type implSynthesizer struct {
	engine  engine
	tempDir string
	logger  logger.Logger
}

// New creates a Synthesizer for the configured engine.
func New(opts Options, exec executor.Executor, log logger.Logger) (Synthesizer, error) {
	var eng engine
	switch opts.Engine {
	case "google":
		eng = &googleEngine{
			endpoint: opts.Endpoint,
			client:   &http.Client{Timeout: 30 * time.Second},
		}
	case "espeak":
		eng = &espeakEngine{binary: opts.BinaryPath, executor: exec}
	default:
		return nil, fmt.Errorf("speech engine %q not supported", opts.Engine)
	}

	return &implSynthesizer{
		engine:  eng,
		tempDir: opts.TempDir,
		logger:  log,
	}, nil
}
