package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/posterscan/posterscan/constants"
	"github.com/posterscan/posterscan/internal/common"
	"github.com/posterscan/posterscan/internal/entity"
)

func newTestRepo(t *testing.T) ExtractionRepository {
	t.Helper()
	db, err := Open(context.Background(), ":memory:", nil)
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewExtractionRepository(db)
}

func sampleExtraction() *entity.Extraction {
	rec := entity.EmptyRecord()
	rec.EventName = "Global Health Symposium"
	rec.EventType = "Offline"
	return &entity.Extraction{
		ID:         uuid.NewString(),
		SourcePath: "poster.jpg",
		Text:       "Global Health Symposium\nVenue: City Hall",
		Record:     rec,
		Confidence: 0.82,
		Status:     constants.StatusOK,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

func TestSaveAndGetByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ex := sampleExtraction()
	if err := repo.Save(ctx, ex); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, ex.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.SourcePath != ex.SourcePath {
		t.Errorf("SourcePath = %q, want %q", got.SourcePath, ex.SourcePath)
	}
	if got.Record.EventName != "Global Health Symposium" {
		t.Errorf("EventName = %q", got.Record.EventName)
	}
	if got.Record.Date != "Not found" {
		t.Errorf("Date = %q, want sentinel round-trip", got.Record.Date)
	}
	if got.Status != constants.StatusOK {
		t.Errorf("Status = %q", got.Status)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	if err == nil {
		t.Fatal("expected error for missing row")
	}
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	older := sampleExtraction()
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := sampleExtraction()

	if err := repo.Save(ctx, older); err != nil {
		t.Fatalf("Save older: %v", err)
	}
	if err := repo.Save(ctx, newer); err != nil {
		t.Fatalf("Save newer: %v", err)
	}

	got, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != newer.ID {
		t.Errorf("expected newest first, got %q then %q", got[0].ID, got[1].ID)
	}
}

func TestListRespectsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ex := sampleExtraction()
		ex.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		if err := repo.Save(ctx, ex); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	got, err := repo.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}
