// Package pipeline wires OCR, extraction, and persistence into one
// per-image processing step.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/posterscan/posterscan/constants"
	"github.com/posterscan/posterscan/internal/entity"
	"github.com/posterscan/posterscan/internal/extract"
	"github.com/posterscan/posterscan/internal/ocr"
	"github.com/posterscan/posterscan/internal/repository"
)

// Recognizer is the OCR collaborator: one expensive stateful resource,
// initialized once and reused across requests.
type Recognizer interface {
	Recognize(ctx context.Context, path string) (ocr.Result, error)
}

// Processor runs one poster image through OCR and field extraction and
// records the outcome.
type Processor struct {
	recognizer Recognizer
	engine     *extract.Engine
	repo       repository.ExtractionRepository
	ocrTimeout time.Duration
	logger     *slog.Logger
}

// NewProcessor builds a Processor. repo may be nil, in which case results
// are returned but not persisted. ocrTimeout bounds each OCR invocation;
// zero disables the bound.
func NewProcessor(recognizer Recognizer, engine *extract.Engine, repo repository.ExtractionRepository, ocrTimeout time.Duration, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		recognizer: recognizer,
		engine:     engine,
		repo:       repo,
		ocrTimeout: ocrTimeout,
		logger:     logger,
	}
}

// Run processes a single image. Acquisition and OCR failures do not
// propagate: they produce a FAILED extraction carrying the error message
// and an empty record, because a bad input image is an outcome, not a
// processing error. The returned error covers persistence only.
func (p *Processor) Run(ctx context.Context, path string) (*entity.Extraction, error) {
	start := time.Now()
	ex := &entity.Extraction{
		ID:         uuid.NewString(),
		SourcePath: path,
		CreatedAt:  time.Now().UTC(),
	}

	ocrCtx := ctx
	if p.ocrTimeout > 0 {
		var cancel context.CancelFunc
		ocrCtx, cancel = context.WithTimeout(ctx, p.ocrTimeout)
		defer cancel()
	}
	result, err := p.recognizer.Recognize(ocrCtx, path)
	if err != nil {
		p.logger.Error("ocr failed", "path", path, "error", err)
		ex.Status = constants.StatusFailed
		ex.ErrorMessage = fmt.Sprintf("could not read image: %v", err)
		ex.Record = entity.EmptyRecord()
	} else {
		ex.Text = result.Text
		ex.Confidence = result.Confidence
		ex.Record = p.engine.Extract(result.Text)
		ex.Status = constants.StatusOK
	}

	if p.repo != nil {
		if err := p.repo.Save(ctx, ex); err != nil {
			return nil, err
		}
	}

	p.logger.Info("poster processed",
		"extraction_id", ex.ID,
		"path", path,
		"status", string(ex.Status),
		"confidence", ex.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ex, nil
}
