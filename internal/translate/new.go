package translate

import (
	"net/http"
	"time"

	"github.com/locnguyen04/digest-flow/internal/logger"
)

type implTranslator struct {
	endpoint string
	client   *http.Client
	logger   logger.Logger
}

// New creates a Translator backed by the Google translate HTTP endpoint.
func New(endpoint string, log logger.Logger) Translator {
	return &implTranslator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   log,
	}
}
