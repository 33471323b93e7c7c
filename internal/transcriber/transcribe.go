package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Transcribe converts mediaPath to 16kHz mono WAV, runs whisper over it and
// returns the whitespace-normalised text. Temporary files are removed.
func (t *implTranscriber) Transcribe(ctx context.Context, mediaPath string) (string, error) {
	start := time.Now()

	if err := os.MkdirAll(t.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	workDir, err := os.MkdirTemp(t.tempDir, "transcribe-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer t.cleanup(ctx, workDir)

	wavPath, err := t.extractAudio(ctx, mediaPath, workDir)
	if err != nil {
		return "", err
	}

	txtPath, err := t.runWhisper(ctx, wavPath)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	text := strings.Join(strings.Fields(string(data)), " ")
	if text == "" {
		return "", ErrEmptyTranscript
	}

	t.logger.Info(ctx, "Transcribed %s: %d words in %s", filepath.Base(mediaPath), len(strings.Fields(text)), time.Since(start))
	return text, nil
}

// extractAudio converts any audio or video container to the format whisper expects.
// -vn drops video, -ar 16000 -ac 1 is 16kHz mono, pcm_s16le is plain WAV.
func (t *implTranscriber) extractAudio(ctx context.Context, mediaPath, workDir string) (string, error) {
	wavPath := filepath.Join(workDir, "audio.wav")

	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	t.logger.Info(ctx, "Extracting audio: %s", mediaPath)
	if _, err := t.executor.Execute(ctx, t.ffmpeg, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	return wavPath, nil
}

// runWhisper writes <prefix>.txt next to the WAV and returns its path.
func (t *implTranscriber) runWhisper(ctx context.Context, wavPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))

	args := []string{
		"-m", t.whisper.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", t.whisper.Language,
		"-t", strconv.Itoa(t.whisper.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if t.whisper.Prompt != "" {
		args = append(args, "--prompt", t.whisper.Prompt)
	}

	t.logger.Info(ctx, "Starting transcription with %d threads: %s", t.whisper.Threads, wavPath)
	if _, err := t.executor.Execute(ctx, t.whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}
	return outputPrefix + ".txt", nil
}

func (t *implTranscriber) cleanup(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}
