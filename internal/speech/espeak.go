package speech

import (
	"context"
	"fmt"

	"github.com/locnguyen04/digest-flow/pkg/executor"
)

// espeakEngine shells out to espeak-ng for fully offline synthesis.
type espeakEngine struct {
	binary   string
	executor executor.Executor
}

func (e *espeakEngine) ext() string { return ".wav" }

func (e *espeakEngine) render(ctx context.Context, text, code, outPath string) error {
	args := []string{
		"-v", code,
		"-w", outPath,
		text,
	}

	if _, err := e.executor.Execute(ctx, e.binary, args...); err != nil {
		return fmt.Errorf("espeak synthesize: %w", err)
	}
	return nil
}
