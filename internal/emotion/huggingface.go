package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type rankedLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify sends the text to the classification model and returns the
// top-ranked label, normalized into the closed set.
func (c *implClassifier) Classify(ctx context.Context, text string) (Label, error) {
	body, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return Neutral, fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.endpoint, "/") + "/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Neutral, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Neutral, fmt.Errorf("call classification model: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Neutral, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Neutral, fmt.Errorf("classification model returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	ranked, err := parseRanked(payload)
	if err != nil {
		return Neutral, err
	}

	top := ranked[0]
	for _, r := range ranked[1:] {
		if r.Score > top.Score {
			top = r
		}
	}

	c.logger.Debug(ctx, "Emotion model top label: %s (%.3f)", top.Label, top.Score)
	return Normalize(top.Label), nil
}

// parseRanked accepts both response shapes the inference API produces:
// a nested [[{label,score}...]] and a flat [{label,score}...].
func parseRanked(payload []byte) ([]rankedLabel, error) {
	var nested [][]rankedLabel
	if err := json.Unmarshal(payload, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}

	var flat []rankedLabel
	if err := json.Unmarshal(payload, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	return nil, fmt.Errorf("unexpected classification response: %s", strings.TrimSpace(string(payload)))
}
