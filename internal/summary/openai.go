package summary

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/locnguyen04/digest-flow/internal/logger"
)

type openaiSummarizer struct {
	model  string
	opts   []option.RequestOption
	logger logger.Logger
}

func newOpenAISummarizer(opts Options, log logger.Logger) (*openaiSummarizer, error) {
	reqOpts := []option.RequestOption{option.WithAPIKey(opts.APIKeys[0])}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if len(opts.APIKeys) > 1 {
		return nil, fmt.Errorf("openai provider takes a single API key")
	}
	return &openaiSummarizer{model: opts.Model, opts: reqOpts, logger: log}, nil
}

// Summarize runs a zero-temperature chat completion and returns the
// single choice.
func (s *openaiSummarizer) Summarize(ctx context.Context, text string, bounds Bounds) (string, error) {
	client := openai.NewClient(s.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(text, bounds)),
		},
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
