package emotion

import (
	"net/http"
	"time"

	"github.com/locnguyen04/digest-flow/internal/logger"
)

type implClassifier struct {
	endpoint string
	model    string
	token    string
	client   *http.Client
	logger   logger.Logger
}

// New creates a Classifier backed by the HuggingFace inference API.
func New(endpoint, model, token string, log logger.Logger) Classifier {
	return &implClassifier{
		endpoint: endpoint,
		model:    model,
		token:    token,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   log,
	}
}
