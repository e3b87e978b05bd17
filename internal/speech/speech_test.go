package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locnguyen04/digest-flow/internal/language"
	"github.com/locnguyen04/digest-flow/internal/logger"
)

func newGoogleSynth(t *testing.T, endpoint string) Synthesizer {
	t.Helper()
	s, err := New(Options{Engine: "google", Endpoint: endpoint, TempDir: t.TempDir()}, nil, logger.New("error"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSynthesize_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fr", r.URL.Query().Get("tl"))
		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	audio := newGoogleSynth(t, server.URL).Synthesize(context.Background(), "Bonjour", language.French)

	assert.NotNil(t, audio)
	assert.Equal(t, "fr", audio.Lang)
	assert.True(t, strings.HasSuffix(audio.Path, "_fr.mp3"), "path %q should carry the language tag", audio.Path)

	data, err := os.ReadFile(audio.Path)
	assert.NoError(t, err)
	assert.Equal(t, "mp3-bytes", string(data))
}

func TestSynthesize_DefaultsToEnglish(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		w.Write([]byte("audio"))
	}))
	defer server.Close()

	audio := newGoogleSynth(t, server.URL).Synthesize(context.Background(), "Hello", language.None)

	assert.NotNil(t, audio)
	assert.Equal(t, "en", audio.Lang)
}

func TestSynthesize_EmptyTextIsAbsent(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	audio := newGoogleSynth(t, server.URL).Synthesize(context.Background(), "   ", language.English)

	assert.Nil(t, audio)
	assert.False(t, called, "empty text must not reach the backend")
}

func TestSynthesize_BackendFailureIsAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unsupported language", http.StatusBadRequest)
	}))
	defer server.Close()

	audio := newGoogleSynth(t, server.URL).Synthesize(context.Background(), "Hello", language.Hindi)

	assert.Nil(t, audio, "backend failure must degrade to absent, not error")
}

func TestNew_UnknownEngine(t *testing.T) {
	_, err := New(Options{Engine: "festival"}, nil, logger.New("error"))
	assert.Error(t, err)
}
