package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/posterscan/posterscan/constants"
	"github.com/posterscan/posterscan/internal/entity"
	"github.com/posterscan/posterscan/internal/extract"
	"github.com/posterscan/posterscan/internal/ocr"
)

type stubRecognizer struct {
	text string
	conf float32
	err  error
}

func (s stubRecognizer) Recognize(_ context.Context, _ string) (ocr.Result, error) {
	if s.err != nil {
		return ocr.Result{}, s.err
	}
	return ocr.Result{Text: s.text, Confidence: s.conf}, nil
}

type recordingRepo struct {
	saved []*entity.Extraction
	err   error
}

func (r *recordingRepo) Save(_ context.Context, ex *entity.Extraction) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, ex)
	return nil
}

func (r *recordingRepo) GetByID(context.Context, string) (*entity.Extraction, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingRepo) List(context.Context, int) ([]entity.Extraction, error) {
	return nil, errors.New("not implemented")
}

func TestProcessorRunSuccess(t *testing.T) {
	rec := stubRecognizer{
		text: "ANNUAL TECH SUMMIT 2025\nVenue: City Hall",
		conf: 0.9,
	}
	repo := &recordingRepo{}
	p := NewProcessor(rec, extract.NewEngine(nil), repo, 0, nil)

	ex, err := p.Run(context.Background(), "poster.jpg")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ex.Status != constants.StatusOK {
		t.Errorf("Status = %q, want OK", ex.Status)
	}
	if ex.Record.EventName != "ANNUAL TECH SUMMIT 2025" {
		t.Errorf("EventName = %q", ex.Record.EventName)
	}
	if ex.Confidence != 0.9 {
		t.Errorf("Confidence = %v", ex.Confidence)
	}
	if len(repo.saved) != 1 || repo.saved[0].ID != ex.ID {
		t.Errorf("extraction not persisted")
	}
}

func TestProcessorRunOCRFailureIsAnOutcome(t *testing.T) {
	rec := stubRecognizer{err: errors.New("image decode failed")}
	repo := &recordingRepo{}
	p := NewProcessor(rec, extract.NewEngine(nil), repo, 0, nil)

	ex, err := p.Run(context.Background(), "broken.png")
	if err != nil {
		t.Fatalf("OCR failure must not propagate, got %v", err)
	}
	if ex.Status != constants.StatusFailed {
		t.Errorf("Status = %q, want FAILED", ex.Status)
	}
	if !strings.Contains(ex.ErrorMessage, "image decode failed") {
		t.Errorf("ErrorMessage = %q", ex.ErrorMessage)
	}
	if ex.Record.EventName != "Not found" || ex.Record.EventType != "Not specified" {
		t.Errorf("expected empty record, got %+v", ex.Record)
	}
	if len(repo.saved) != 1 {
		t.Errorf("failed extraction should still be recorded")
	}
}

func TestProcessorRunPersistenceErrorPropagates(t *testing.T) {
	rec := stubRecognizer{text: "some text"}
	repo := &recordingRepo{err: errors.New("disk full")}
	p := NewProcessor(rec, extract.NewEngine(nil), repo, 0, nil)

	if _, err := p.Run(context.Background(), "poster.jpg"); err == nil {
		t.Fatal("expected persistence error")
	}
}

func TestProcessorRunWithoutRepo(t *testing.T) {
	rec := stubRecognizer{text: "Venue: City Hall"}
	p := NewProcessor(rec, extract.NewEngine(nil), nil, 0, nil)

	ex, err := p.Run(context.Background(), "poster.jpg")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ex.Record.EventType != "Offline" {
		t.Errorf("EventType = %q", ex.Record.EventType)
	}
}
