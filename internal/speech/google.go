package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

// googleEngine fetches MP3 audio from the Google translate TTS endpoint.
type googleEngine struct {
	endpoint string
	client   *http.Client
}

func (g *googleEngine) ext() string { return ".mp3" }

func (g *googleEngine) render(ctx context.Context, text, code, outPath string) error {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", code)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("call TTS backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TTS backend returned %d", resp.StatusCode)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("open audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}
	return nil
}
