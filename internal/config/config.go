package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// GeminiKeysEnv holds comma separated Gemini API keys.
const GeminiKeysEnv = "GEMINI_API_KEYS"

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Tagger      TaggerConfig      `yaml:"tagger"`
	Summary     SummaryConfig     `yaml:"summary"`
	Extraction  ExtractionConfig  `yaml:"extraction"`
	Paths       PathsConfig       `yaml:"paths"`
	Report      ReportConfig      `yaml:"report"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type TaggerConfig struct {
	ModelPath    string `yaml:"model_path"`
	OnnxFilename string `yaml:"onnx_filename"`
}

// Bounds are the max/min word lengths handed to the summarization engine.
type Bounds struct {
	MaxLength int `yaml:"max_length"`
	MinLength int `yaml:"min_length"`
}

type SummaryConfig struct {
	MinWords          int    `yaml:"min_words"`
	MaxChunkWords     int    `yaml:"max_chunk_words"`
	CombinedThreshold int    `yaml:"combined_threshold"`
	Single            Bounds `yaml:"single"`
	Chunk             Bounds `yaml:"chunk"`
	Combined          Bounds `yaml:"combined"`
}

type ExtractionConfig struct {
	MinSentenceWords int `yaml:"min_sentence_words"`
}

type PathsConfig struct {
	Input      string `yaml:"input"`
	Output     string `yaml:"output"`
	Processing string `yaml:"processing"`
	Archived   string `yaml:"archived"`
	Temp       string `yaml:"temp"`
}

type ReportConfig struct {
	Formats []string `yaml:"formats"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent     int `yaml:"max_concurrent"`
	EngineConcurrency int `yaml:"engine_concurrency"`
}

// DefaultSummary returns the summary policy used when nothing is configured.
func DefaultSummary() SummaryConfig {
	return SummaryConfig{
		MinWords:          50,
		MaxChunkWords:     1024,
		CombinedThreshold: 100,
		Single:            Bounds{MaxLength: 150, MinLength: 50},
		Chunk:             Bounds{MaxLength: 100, MinLength: 30},
		Combined:          Bounds{MaxLength: 200, MinLength: 75},
	}
}

// Load reads .env (if present) and the YAML file at path, then validates it.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if keys := os.Getenv(GeminiKeysEnv); keys != "" {
		cfg.Gemini.APIKeys = splitKeys(keys)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
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

// Validate checks what every command needs and fills defaults. Whisper
// settings are checked separately by ValidateTranscription.
func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	for _, f := range c.Report.Formats {
		switch f {
		case "json", "markdown", "docx":
		default:
			return fmt.Errorf("report.formats: unknown format %q", f)
		}
	}

	if c.Paths.Processing == "" {
		c.Paths.Processing = "data/processing"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.EngineConcurrency == 0 {
		c.Performance.EngineConcurrency = 1
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Tagger.OnnxFilename == "" {
		c.Tagger.OnnxFilename = "model.onnx"
	}
	if c.Extraction.MinSentenceWords == 0 {
		c.Extraction.MinSentenceWords = 5
	}
	if len(c.Report.Formats) == 0 {
		c.Report.Formats = []string{"json", "markdown"}
	}
	c.Summary = c.Summary.withDefaults()

	return nil
}

// ValidateTranscription checks the whisper settings needed by the audio
// and watch paths.
func (c *Config) ValidateTranscription() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.Language == "" {
		return fmt.Errorf("whisper.language is required")
	}
	return nil
}

// withDefaults fills every zero field from DefaultSummary.
func (s SummaryConfig) withDefaults() SummaryConfig {
	d := DefaultSummary()
	if s.MinWords == 0 {
		s.MinWords = d.MinWords
	}
	if s.MaxChunkWords == 0 {
		s.MaxChunkWords = d.MaxChunkWords
	}
	if s.CombinedThreshold == 0 {
		s.CombinedThreshold = d.CombinedThreshold
	}
	if s.Single == (Bounds{}) {
		s.Single = d.Single
	}
	if s.Chunk == (Bounds{}) {
		s.Chunk = d.Chunk
	}
	if s.Combined == (Bounds{}) {
		s.Combined = d.Combined
	}
	return s
}
