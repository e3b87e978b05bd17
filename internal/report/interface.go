package report

import (
	"context"

	"github.com/locnguyen04/digest-flow/internal/pipeline"
)

// Writer persists a pipeline result bundle to the output directory.
type Writer interface {
	Write(ctx context.Context, name string, res *pipeline.Result) error
}
