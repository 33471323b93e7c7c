package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Process runs one inbox file through the pipeline and writes its meeting
// report. A failed transcription still produces a report marked failed.
// The input is archived either way.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()

	source, ok := models.SourceFor(path)
	if !ok {
		return fmt.Errorf("unsupported input: %s", path)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting %s meeting: %s", source, path)
	p.logger.Info(ctx, "========================================")

	workPath, err := p.moveToProcessing(ctx, path)
	if err != nil {
		return err
	}

	now := p.now()
	meeting := models.Meeting{
		ID:        p.newID(),
		Title:     titleFromPath(path),
		Source:    source,
		Status:    models.MeetingProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, procErr := p.run(ctx, source, workPath)
	if procErr != nil {
		meeting.Fail(p.now())
	} else {
		meeting.Complete(res, p.now())
	}

	paths, err := p.reports.Write(ctx, meeting)
	if err != nil {
		p.logger.Error(ctx, "Failed to write report for %s: %v", meeting.ID, err)
	}

	if aerr := p.moveToArchived(ctx, workPath); aerr != nil {
		p.logger.Warn(ctx, "Failed to move input to archived folder: %v", aerr)
	}

	if procErr != nil {
		return fmt.Errorf("process %s: %w", filepath.Base(path), procErr)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Meeting %s completed: %d action items", meeting.ID, len(meeting.ActionItems))
	p.logger.Info(ctx, "Reports: %s", strings.Join(paths, ", "))
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")
	return nil
}

func (p *implProcessor) run(ctx context.Context, source models.Source, path string) (models.Result, error) {
	if source == models.SourceAudio {
		return p.ProcessAudio(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Result{}, fmt.Errorf("read transcript: %w", err)
	}
	return p.ProcessText(ctx, string(data)), nil
}

// titleFromPath turns "inbox/weekly_sync-03.txt" into "weekly sync 03".
func titleFromPath(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
