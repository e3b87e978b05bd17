package config

import "fmt"

type Config struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Emotion    EmotionConfig    `yaml:"emotion"`
	Translate  TranslateConfig  `yaml:"translate"`
	Speech     SpeechConfig     `yaml:"speech"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type SummarizerConfig struct {
	Provider  string `yaml:"provider"` // gemini | openai
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"` // comma-separated keys allowed (rotation)
	BaseURL   string `yaml:"base_url"`    // optional OpenAI-compatible endpoint
}

type EmotionConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	TokenEnv string `yaml:"token_env"`
}

type TranslateConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type SpeechConfig struct {
	Engine     string `yaml:"engine"` // google | espeak
	Endpoint   string `yaml:"endpoint"`
	BinaryPath string `yaml:"binary_path"`
}

type PipelineConfig struct {
	TargetLanguage string `yaml:"target_language"`
	MinWords       int    `yaml:"min_words"`
	MaxWords       int    `yaml:"max_words"`
	MaxConcurrent  int    `yaml:"max_concurrent"` // watch-mode bound
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	switch c.Summarizer.Provider {
	case "", "gemini", "openai":
	default:
		return fmt.Errorf("summarizer.provider %q is not supported (gemini, openai)", c.Summarizer.Provider)
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "gemini"
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gemini-2.5-flash"
	}
	if c.Summarizer.APIKeyEnv == "" {
		c.Summarizer.APIKeyEnv = "SUMMARIZER_API_KEYS"
	}

	if c.Emotion.Endpoint == "" {
		c.Emotion.Endpoint = "https://api-inference.huggingface.co/models"
	}
	if c.Emotion.Model == "" {
		c.Emotion.Model = "j-hartmann/emotion-english-distilroberta-base"
	}
	if c.Emotion.TokenEnv == "" {
		c.Emotion.TokenEnv = "HF_API_TOKEN"
	}

	if c.Translate.Endpoint == "" {
		c.Translate.Endpoint = "https://translate.googleapis.com/translate_a/single"
	}

	switch c.Speech.Engine {
	case "", "google", "espeak":
	default:
		return fmt.Errorf("speech.engine %q is not supported (google, espeak)", c.Speech.Engine)
	}
	if c.Speech.Engine == "" {
		c.Speech.Engine = "google"
	}
	if c.Speech.Endpoint == "" {
		c.Speech.Endpoint = "https://translate.google.com/translate_tts"
	}
	if c.Speech.Engine == "espeak" && c.Speech.BinaryPath == "" {
		c.Speech.BinaryPath = "espeak-ng"
	}

	if c.Pipeline.TargetLanguage == "" {
		c.Pipeline.TargetLanguage = "None"
	}
	if c.Pipeline.MinWords == 0 {
		c.Pipeline.MinWords = 30
	}
	if c.Pipeline.MaxWords == 0 {
		c.Pipeline.MaxWords = 150
	}
	if c.Pipeline.MinWords >= c.Pipeline.MaxWords {
		return fmt.Errorf("pipeline.min_words (%d) must be below pipeline.max_words (%d)",
			c.Pipeline.MinWords, c.Pipeline.MaxWords)
	}
	if c.Pipeline.MaxConcurrent == 0 {
		c.Pipeline.MaxConcurrent = 2
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
