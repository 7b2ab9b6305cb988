package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/posterscan/posterscan/constants"
	"github.com/posterscan/posterscan/internal/common"
	"github.com/posterscan/posterscan/internal/entity"
	"github.com/posterscan/posterscan/internal/extract"
	"github.com/posterscan/posterscan/internal/ocr"
	"github.com/posterscan/posterscan/internal/pipeline"
)

type stubRecognizer struct {
	text string
}

func (s stubRecognizer) Recognize(context.Context, string) (ocr.Result, error) {
	return ocr.Result{Text: s.text, Confidence: 0.9}, nil
}

type memRepo struct {
	byID map[string]*entity.Extraction
}

func newMemRepo() *memRepo {
	return &memRepo{byID: make(map[string]*entity.Extraction)}
}

func (m *memRepo) Save(_ context.Context, ex *entity.Extraction) error {
	m.byID[ex.ID] = ex
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*entity.Extraction, error) {
	ex, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: extraction %s", common.ErrNotFound, id)
	}
	return ex, nil
}

func (m *memRepo) List(_ context.Context, limit int) ([]entity.Extraction, error) {
	var out []entity.Extraction
	for _, ex := range m.byID {
		out = append(out, *ex)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func newTestServer(t *testing.T, repo *memRepo, posterText string) *httptest.Server {
	t.Helper()
	processor := pipeline.NewProcessor(stubRecognizer{text: posterText}, extract.NewEngine(nil), repo, 0, nil)
	handler := NewHandler(nil, processor, repo, 1<<20)
	mux := http.NewServeMux()
	RegisterRoutes(mux, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, newMemRepo(), "")

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestExtractEndpoint(t *testing.T) {
	repo := newMemRepo()
	srv := newTestServer(t, repo, "ANNUAL TECH SUMMIT 2025\nVenue: City Hall")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "poster.jpg")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("fake image bytes"))
	mw.Close()

	resp, err := http.Post(srv.URL+"/v1/extract", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("POST /v1/extract: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got extractionResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Record.EventName != "ANNUAL TECH SUMMIT 2025" {
		t.Errorf("EventName = %q", got.Record.EventName)
	}
	if got.SourcePath != "poster.jpg" {
		t.Errorf("SourcePath = %q, want client filename", got.SourcePath)
	}
	if got.Status != string(constants.StatusOK) {
		t.Errorf("Status = %q", got.Status)
	}
	if len(repo.byID) != 1 {
		t.Errorf("extraction not persisted")
	}
}

func TestExtractEndpointRejectsUnsupportedType(t *testing.T) {
	srv := newTestServer(t, newMemRepo(), "")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("image", "notes.txt")
	part.Write([]byte("plain text"))
	mw.Close()

	resp, err := http.Post(srv.URL+"/v1/extract", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetExtraction(t *testing.T) {
	repo := newMemRepo()
	id := uuid.NewString()
	repo.byID[id] = &entity.Extraction{
		ID:         id,
		SourcePath: "poster.jpg",
		Record:     entity.EmptyRecord(),
		Status:     constants.StatusOK,
		CreatedAt:  time.Now().UTC(),
	}
	srv := newTestServer(t, repo, "")

	resp, err := http.Get(srv.URL + "/v1/extractions/" + id)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got extractionResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID = %q, want %q", got.ID, id)
	}
}

func TestGetExtractionBadID(t *testing.T) {
	srv := newTestServer(t, newMemRepo(), "")

	resp, err := http.Get(srv.URL + "/v1/extractions/not-a-uuid")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListExtractions(t *testing.T) {
	repo := newMemRepo()
	for i := 0; i < 3; i++ {
		id := uuid.NewString()
		repo.byID[id] = &entity.Extraction{
			ID:        id,
			Record:    entity.EmptyRecord(),
			Status:    constants.StatusOK,
			CreatedAt: time.Now().UTC(),
		}
	}
	srv := newTestServer(t, repo, "")

	resp, err := http.Get(srv.URL + "/v1/extractions?limit=2")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got struct {
		Extractions []extractionResponse `json:"extractions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Extractions) != 2 {
		t.Errorf("len = %d, want 2", len(got.Extractions))
	}
}
