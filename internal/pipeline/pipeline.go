package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/locnguyen04/digest-flow/internal/emotion"
	"github.com/locnguyen04/digest-flow/internal/language"
	"github.com/locnguyen04/digest-flow/internal/signlang"
	"github.com/locnguyen04/digest-flow/internal/speech"
)

// sentinelResult is returned verbatim for blank input.
func sentinelResult() *Result {
	return &Result{
		DisplaySummary: "Input required.",
		EnglishSummary: "N/A",
		TargetSummary:  "N/A",
		SignMarkup:     "",
	}
}

// InputRequired reports whether the result is the blank-input sentinel,
// which carries no artifacts worth persisting.
func (r *Result) InputRequired() bool {
	s := sentinelResult()
	return r.DisplaySummary == s.DisplaySummary &&
		r.EnglishSummary == s.EnglishSummary &&
		r.TargetSummary == s.TargetSummary
}

// Run executes the transformation stages in order. Summarization is the
// only fatal stage; translation falls back to the untranslated summary
// and synthesis degrades to absent audio.
func (p *implPipeline) Run(ctx context.Context, req Request) (*Result, error) {
	startTime := time.Now()

	if strings.TrimSpace(req.Text) == "" {
		p.logger.Info(ctx, "Blank input, returning sentinel result")
		return sentinelResult(), nil
	}

	p.logger.Info(ctx, "Starting pipeline: %d chars, target=%s, bounds=(%d,%d)",
		len(req.Text), req.Target, req.Bounds.MinWords, req.Bounds.MaxWords)

	// Step 1: summarize (mandatory)
	summarized, err := p.summarizer.Summarize(ctx, req.Text, req.Bounds)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	p.logger.Info(ctx, "Summary ready: %d chars", len(summarized))

	// Step 2: classify the summary, not the raw text
	label := p.classify(ctx, summarized)

	// Step 3: dual translation, independent branches joined before use
	englishSummary, targetSummary := p.translateDual(ctx, summarized, req.Target)

	// Step 4: dual synthesis, best-effort; target audio only when a
	// target language was requested and its text survived
	englishAudio, targetAudio := p.synthesizeDual(ctx, englishSummary, targetSummary, req.Target)

	// Step 5: visualize the original-language summary
	markup := signlang.Render(summarized)

	p.logger.Info(ctx, "Pipeline completed in %s", time.Since(startTime))

	return &Result{
		DisplaySummary: fmt.Sprintf("%s \n\nEmotion: %s %s", summarized, label, label.Emoji()),
		EnglishAudio:   englishAudio,
		TargetAudio:    targetAudio,
		EnglishSummary: englishSummary,
		TargetSummary:  targetSummary,
		SignMarkup:     markup,
	}, nil
}

// classify degrades to neutral on backend failure; only summarization
// may fail the request.
func (p *implPipeline) classify(ctx context.Context, text string) emotion.Label {
	label, err := p.classifier.Classify(ctx, text)
	if err != nil {
		p.logger.Warn(ctx, "Emotion classification failed, using neutral: %v", err)
		return emotion.Neutral
	}
	return label
}

// translateDual issues the English and target translations concurrently.
// A failed branch falls back to the untranslated summary so the request
// still returns usable text.
func (p *implPipeline) translateDual(ctx context.Context, summarized string, target language.Selection) (string, string) {
	var wg sync.WaitGroup
	var englishSummary, targetSummary string

	wg.Add(2)
	go func() {
		defer wg.Done()
		englishSummary = p.translateOrFallback(ctx, summarized, language.English)
	}()
	go func() {
		defer wg.Done()
		targetSummary = p.translateOrFallback(ctx, summarized, target)
	}()
	wg.Wait()

	return englishSummary, targetSummary
}

func (p *implPipeline) translateOrFallback(ctx context.Context, text string, sel language.Selection) string {
	out, err := p.translator.Translate(ctx, text, sel)
	if err != nil {
		p.logger.Warn(ctx, "Translation to %s failed, keeping original summary: %v", sel, err)
		return text
	}
	return out
}

func (p *implPipeline) synthesizeDual(ctx context.Context, englishSummary, targetSummary string, target language.Selection) (*speech.Audio, *speech.Audio) {
	var wg sync.WaitGroup
	var englishAudio, targetAudio *speech.Audio

	wg.Add(1)
	go func() {
		defer wg.Done()
		englishAudio = p.synthesizer.Synthesize(ctx, englishSummary, language.English)
	}()

	if target.Requested() && targetSummary != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			targetAudio = p.synthesizer.Synthesize(ctx, targetSummary, target)
		}()
	}

	wg.Wait()
	return englishAudio, targetAudio
}
