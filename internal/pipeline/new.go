package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/summarizer"
)

type implPipeline struct {
	cfg        *config.Config
	summarizer summarizer.Summarizer
	logger     logger.Logger
	now        func() time.Time
}

// New creates a Pipeline writing into cfg.Paths.Output and archiving
// processed transcripts into cfg.Paths.Archived.
func New(cfg *config.Config, s summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		summarizer: s,
		logger:     log,
		now:        time.Now,
	}
}
