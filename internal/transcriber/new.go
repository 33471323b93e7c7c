package transcriber

import (
	"errors"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

// ErrEmptyTranscript is returned when whisper produced no text.
var ErrEmptyTranscript = errors.New("empty transcript")

type implTranscriber struct {
	whisper  config.WhisperConfig
	ffmpeg   string
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a whisper.cpp backed Transcriber.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		whisper:  cfg.Whisper,
		ffmpeg:   cfg.FFmpeg.BinaryPath,
		tempDir:  cfg.Paths.Temp,
		executor: exec,
		logger:   log,
	}
}
