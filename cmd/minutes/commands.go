package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
	"github.com/nguyentantai21042004/minutes-flow/internal/watcher"
)

func watchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process every file dropped into the inbox until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.cfg.ValidateTranscription(); err != nil {
				return fmt.Errorf("validate config: %w", err)
			}

			log := a.logger
			log.Info(ctx, "========================================")
			log.Info(ctx, "Meeting Minutes Pipeline %s", version)
			log.Info(ctx, "========================================")
			log.Info(ctx, "System: %s/%s, %d cores", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

			if err := ensureDirectories(a.cfg); err != nil {
				return fmt.Errorf("create directories: %w", err)
			}

			w, err := watcher.New(a.cfg.Paths.Input, a.proc.Process, log, a.cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
			log.Info(ctx, "Output: %s (%v)", a.cfg.Paths.Output, a.cfg.Report.Formats)
			log.Info(ctx, "Whisper: %d threads, summaries: %s", a.cfg.Whisper.Threads, a.cfg.Gemini.Model)
			log.Info(ctx, "Concurrent: %d files, %d per engine", a.cfg.Performance.MaxConcurrent, a.cfg.Performance.EngineConcurrency)
			log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("watcher: %w", err)
			}

			log.Info(ctx, "Shutdown complete")
			return nil
		},
	}
}

func textCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "text <file>",
		Short: "Summarize a transcript file and extract its action items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}

			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			return printResult(cmd, a.proc.ProcessText(cmd.Context(), string(data)))
		},
	}
}

func audioCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "audio <file>",
		Short: "Transcribe a recording, then summarize it and extract action items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.cfg.ValidateTranscription(); err != nil {
				return fmt.Errorf("validate config: %w", err)
			}
			if err := os.MkdirAll(a.cfg.Paths.Temp, 0755); err != nil {
				return fmt.Errorf("create temp dir: %w", err)
			}

			res, err := a.proc.ProcessAudio(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func printResult(cmd *cobra.Command, res models.Result) error {
	if res.ActionItems == nil {
		res.ActionItems = []models.ActionItem{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
