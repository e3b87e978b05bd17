package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/locnguyen04/digest-flow/internal/config"
	"github.com/locnguyen04/digest-flow/internal/emotion"
	"github.com/locnguyen04/digest-flow/internal/language"
	"github.com/locnguyen04/digest-flow/internal/logger"
	"github.com/locnguyen04/digest-flow/internal/pipeline"
	"github.com/locnguyen04/digest-flow/internal/report"
	"github.com/locnguyen04/digest-flow/internal/speech"
	"github.com/locnguyen04/digest-flow/internal/summary"
	"github.com/locnguyen04/digest-flow/internal/translate"
	"github.com/locnguyen04/digest-flow/internal/watcher"
	"github.com/locnguyen04/digest-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	inPath := flag.String("in", "", "input text file (reads stdin when empty)")
	target := flag.String("target", "", "target language name (overrides config)")
	minWords := flag.Int("min", 0, "minimum summary words (overrides config)")
	maxWords := flag.Int("max", 0, "maximum summary words (overrides config)")
	watch := flag.Bool("watch", false, "watch the input directory instead of running once")
	flag.Parse()

	godotenv.Load() // ignore error, ENV vars take precedence

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Text Digest Pipeline")
	log.Info(ctx, "========================================")

	sel, bounds, err := resolveRequestDefaults(cfg, *target, *minWords, *maxWords)
	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}

	pipe, err := buildPipeline(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}
	reporter := report.New(cfg.Paths.Output, log)

	if *watch {
		runWatch(ctx, cfg, pipe, reporter, sel, bounds, log)
		return
	}

	if err := runOnce(ctx, *inPath, pipe, reporter, sel, bounds); err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}
}

// buildPipeline wires the stage backends from config and environment.
func buildPipeline(cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	summarizer, err := summary.New(summary.Options{
		Provider: cfg.Summarizer.Provider,
		Model:    cfg.Summarizer.Model,
		APIKeys:  splitKeys(os.Getenv(cfg.Summarizer.APIKeyEnv)),
		BaseURL:  cfg.Summarizer.BaseURL,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("summarizer: %w", err)
	}

	classifier := emotion.New(cfg.Emotion.Endpoint, cfg.Emotion.Model, os.Getenv(cfg.Emotion.TokenEnv), log)
	translator := translate.New(cfg.Translate.Endpoint, log)

	synthesizer, err := speech.New(speech.Options{
		Engine:     cfg.Speech.Engine,
		Endpoint:   cfg.Speech.Endpoint,
		BinaryPath: cfg.Speech.BinaryPath,
		TempDir:    cfg.Paths.Temp,
	}, executor.New(), log)
	if err != nil {
		return nil, fmt.Errorf("synthesizer: %w", err)
	}

	return pipeline.New(summarizer, classifier, translator, synthesizer, log), nil
}

func resolveRequestDefaults(cfg *config.Config, target string, minWords, maxWords int) (language.Selection, summary.Bounds, error) {
	name := target
	if name == "" {
		name = cfg.Pipeline.TargetLanguage
	}
	sel, err := language.Parse(name)
	if err != nil {
		return language.None, summary.Bounds{}, err
	}

	bounds := summary.Bounds{MinWords: cfg.Pipeline.MinWords, MaxWords: cfg.Pipeline.MaxWords}
	if minWords > 0 {
		bounds.MinWords = minWords
	}
	if maxWords > 0 {
		bounds.MaxWords = maxWords
	}
	if bounds.MinWords >= bounds.MaxWords {
		return language.None, summary.Bounds{}, fmt.Errorf("min words (%d) must be below max words (%d)", bounds.MinWords, bounds.MaxWords)
	}

	return sel, bounds, nil
}

// runOnce processes a single input and prints the text fields.
func runOnce(ctx context.Context, inPath string, pipe pipeline.Pipeline, reporter report.Writer, sel language.Selection, bounds summary.Bounds) error {
	var text []byte
	var name string
	var err error

	if inPath == "" {
		text, err = io.ReadAll(os.Stdin)
		name = "digest"
	} else {
		text, err = os.ReadFile(inPath)
		name = baseName(inPath)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	res, err := pipe.Run(ctx, pipeline.Request{Text: string(text), Target: sel, Bounds: bounds})
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	// nothing to persist for blank input
	if !res.InputRequired() {
		if err := reporter.Write(ctx, name, res); err != nil {
			return err
		}
	}

	fmt.Println(res.DisplaySummary)
	return nil
}

// runWatch monitors the input directory until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, reporter report.Writer, sel language.Selection, bounds summary.Bounds, log logger.Logger) {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived, cfg.Paths.Temp} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error(ctx, "Failed to create directory %s: %v", dir, err)
			os.Exit(1)
		}
	}

	handler := func(ctx context.Context, filePath string) error {
		text, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		res, err := pipe.Run(ctx, pipeline.Request{Text: string(text), Target: sel, Bounds: bounds})
		if err != nil {
			return fmt.Errorf("pipeline: %w", err)
		}

		if res.InputRequired() {
			log.Warn(ctx, "Skipping blank input: %s", filePath)
		} else if err := reporter.Write(ctx, baseName(filePath), res); err != nil {
			return err
		}

		// archive so the input is not re-processed
		dest := filepath.Join(cfg.Paths.Archived, filepath.Base(filePath))
		if err := os.Rename(filePath, dest); err != nil {
			log.Warn(ctx, "Failed to archive %s: %v", filePath, err)
		}
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Pipeline.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Pipeline stopped")
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
