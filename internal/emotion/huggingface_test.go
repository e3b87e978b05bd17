package emotion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locnguyen04/digest-flow/internal/logger"
)

func TestClassify_NestedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-model", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`[[{"label":"joy","score":0.91},{"label":"sadness","score":0.04}]]`))
	}))
	defer server.Close()

	c := New(server.URL, "test-model", "secret", logger.New("error"))
	label, err := c.Classify(context.Background(), "what a great day")

	assert.NoError(t, err)
	assert.Equal(t, Joy, label)
}

func TestClassify_FlatResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"label":"anger","score":0.77},{"label":"fear","score":0.11}]`))
	}))
	defer server.Close()

	c := New(server.URL, "test-model", "", logger.New("error"))
	label, err := c.Classify(context.Background(), "this is infuriating")

	assert.NoError(t, err)
	assert.Equal(t, Anger, label)
}

func TestClassify_UnknownLabelNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"contentment","score":0.99}]]`))
	}))
	defer server.Close()

	c := New(server.URL, "test-model", "", logger.New("error"))
	label, err := c.Classify(context.Background(), "fine")

	assert.NoError(t, err)
	assert.Equal(t, Neutral, label)
}

func TestClassify_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := New(server.URL, "test-model", "", logger.New("error"))
	label, err := c.Classify(context.Background(), "anything")

	assert.Error(t, err)
	assert.Equal(t, Neutral, label)
}

func TestClassify_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"oops"}`))
	}))
	defer server.Close()

	c := New(server.URL, "test-model", "", logger.New("error"))
	_, err := c.Classify(context.Background(), "anything")

	assert.Error(t, err)
}
