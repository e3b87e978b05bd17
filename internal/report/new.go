package report

import (
	"github.com/locnguyen04/digest-flow/internal/logger"
)

type implWriter struct {
	outDir string
	logger logger.Logger
}

// New creates a Writer that places all artifacts under outDir.
func New(outDir string, log logger.Logger) Writer {
	return &implWriter{outDir: outDir, logger: log}
}
