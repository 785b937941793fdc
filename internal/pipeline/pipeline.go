package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/dataset"
	"github.com/nguyentantai21042004/meeting-minutes/internal/summarizer"
)

// Process summarizes one transcript and writes <name>.md, <name>.json and
// <name>.docx. Generation failures are written into the outputs; only
// file system errors are returned. The transcript is archived unless a
// backend call failed.
func (p *implPipeline) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()
	name := dataset.Name(transcriptPath)

	p.logger.Info(ctx, "Processing transcript: %s", transcriptPath)

	content, err := os.ReadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	summary, items := p.summarizer.Summarize(ctx, string(content))
	if !summary.OK() {
		p.logger.Warn(ctx, "Summary for %s failed: %v", name, summary.Failure)
	}
	if !items.OK() {
		p.logger.Warn(ctx, "Action items for %s failed: %v", name, items.Failure)
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	m := minutes{
		Title:       name,
		GeneratedAt: p.now(),
		Summary:     summary,
		ActionItems: items,
	}

	mdPath := filepath.Join(p.cfg.Paths.Output, name+".md")
	if err := os.WriteFile(mdPath, []byte(m.Markdown()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	jsonPath := filepath.Join(p.cfg.Paths.Output, name+".json")
	record, err := items.JSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(jsonPath, []byte(record+"\n"), 0644); err != nil {
		return fmt.Errorf("write action items: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
	if err := writeMinutesDocx(m, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write docx for %s: %v", name, err)
	}

	if retryable(summary.Failure) || retryable(items.Failure) {
		p.logger.Warn(ctx, "Backend unavailable, leaving %s in the input folder for a later run", transcriptPath)
	} else if err := p.moveToArchived(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to move transcript to archived folder: %v", err)
	}

	p.logger.Info(ctx, "[DONE] %s -> %s (%s)", name, mdPath, time.Since(startTime))
	return nil
}

// retryable reports whether no model reply was received, so the transcript
// should be processed again once the backend is reachable.
func retryable(f *summarizer.Failure) bool {
	if f == nil {
		return false
	}
	return f.Kind == summarizer.FailureBackend || f.Kind == summarizer.FailureConfiguration
}

// ProcessDir processes every transcript already in dir, at most
// cfg.Performance.MaxConcurrent at a time. Every failure is reported.
func (p *implPipeline) ProcessDir(ctx context.Context, dir string) error {
	files, err := dataset.Discover(dir)
	if err != nil {
		return fmt.Errorf("discover transcripts: %w", err)
	}
	if len(files) == 0 {
		p.logger.Info(ctx, "No transcripts found in %s", dir)
		return nil
	}

	p.logger.Info(ctx, "Found %d transcripts to process", len(files))

	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			break
		}
		if err := sem.acquire(ctx); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			break
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.release()

			if err := p.Process(ctx, path); err != nil {
				p.logger.Error(ctx, "Failed to process %s: %v", path, err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(path), err))
				mu.Unlock()
			}
		}(path)
	}

	wg.Wait()
	return errors.Join(errs...)
}
