package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/locnguyen04/digest-flow/internal/language"
)

// Translate resolves the selection to a language code and delegates to
// the backend with source detection. None returns the text unchanged.
func (t *implTranslator) Translate(ctx context.Context, text string, sel language.Selection) (string, error) {
	code := sel.Code()
	if code == "" {
		return text, nil
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", code)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call translation backend: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	translated, err := parseSegments(payload)
	if err != nil {
		return "", err
	}

	t.logger.Debug(ctx, "Translated %d chars to %s", len(text), code)
	return translated, nil
}

// parseSegments extracts the translated text from the backend's nested
// array payload: [[["<translated>","<source>",...],...],...].
func parseSegments(payload []byte) (string, error) {
	var doc []json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil || len(doc) == 0 {
		return "", fmt.Errorf("unexpected translation response: %s", strings.TrimSpace(string(payload)))
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(doc[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected translation segments: %s", strings.TrimSpace(string(doc[0])))
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		b.WriteString(part)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("translation response contained no text")
	}
	return b.String(), nil
}
