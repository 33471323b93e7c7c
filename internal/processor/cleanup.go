package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToProcessing moves an input file from the inbox to the processing folder
func (p *implProcessor) moveToProcessing(ctx context.Context, path string) (string, error) {
	return p.move(ctx, path, p.cfg.Paths.Processing, "processing")
}

// moveToArchived moves a handled input out of the processing folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	_, err := p.move(ctx, path, p.cfg.Paths.Archived, "archived")
	return err
}

func (p *implProcessor) move(ctx context.Context, path, dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s dir: %w", label, err)
	}

	destPath := filepath.Join(dir, filepath.Base(path))
	p.logger.Info(ctx, "Moving to %s folder: %s -> %s", label, path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return "", fmt.Errorf("move to %s: %w", label, err)
	}
	return destPath, nil
}
