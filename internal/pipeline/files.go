package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed transcript out of the input folder so it
// is not picked up again. Falls back to copy and remove across devices.
func (p *implPipeline) moveToArchived(ctx context.Context, transcriptPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(transcriptPath))

	p.logger.Debug(ctx, "Archiving transcript: %s -> %s", transcriptPath, destPath)

	if err := os.Rename(transcriptPath, destPath); err == nil {
		return nil
	}
	if err := copyFile(transcriptPath, destPath); err != nil {
		return fmt.Errorf("archive transcript: %w", err)
	}
	if err := os.Remove(transcriptPath); err != nil {
		return fmt.Errorf("remove archived transcript: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
