// Package server exposes the extraction pipeline over HTTP.
package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/posterscan/posterscan/constants"
	"github.com/posterscan/posterscan/internal/common"
	"github.com/posterscan/posterscan/internal/entity"
	"github.com/posterscan/posterscan/internal/pipeline"
	"github.com/posterscan/posterscan/internal/repository"
)

type Handler struct {
	logger         *slog.Logger
	processor      *pipeline.Processor
	repo           repository.ExtractionRepository
	maxUploadBytes int64
}

func NewHandler(logger *slog.Logger, processor *pipeline.Processor, repo repository.ExtractionRepository, maxUploadBytes int64) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 15 << 20
	}
	return &Handler{
		logger:         logger,
		processor:      processor,
		repo:           repo,
		maxUploadBytes: maxUploadBytes,
	}
}

// extractionResponse is the API shape of one extraction.
type extractionResponse struct {
	ID           string              `json:"id"`
	SourcePath   string              `json:"source_path"`
	Text         string              `json:"text,omitempty"`
	Record       entity.PosterRecord `json:"record"`
	Confidence   float32             `json:"confidence"`
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
	CreatedAt    string              `json:"created_at"`
}

func toResponse(ex *entity.Extraction) extractionResponse {
	return extractionResponse{
		ID:           ex.ID,
		SourcePath:   ex.SourcePath,
		Text:         ex.Text,
		Record:       ex.Record,
		Confidence:   ex.Confidence,
		Status:       string(ex.Status),
		ErrorMessage: ex.ErrorMessage,
		CreatedAt:    ex.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// HandleExtract accepts a multipart upload with an "image" part, runs it
// through the pipeline, and returns the extraction.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.logger.Error("multipart parse failed", "error", err)
		jsonError(w, http.StatusBadRequest, "expected multipart form with an image part")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "missing image part")
		return
	}
	defer file.Close()

	ext := constants.NormalizeExt(filepath.Ext(header.Filename))
	if !constants.IsImageExt(ext) {
		jsonError(w, http.StatusBadRequest, fmt.Sprintf("unsupported image type %q", ext))
		return
	}

	tmpPath, err := h.spoolUpload(file, ext)
	if err != nil {
		h.logger.Error("spool upload failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "could not store upload")
		return
	}
	defer os.Remove(tmpPath)

	ex, err := h.processor.Run(ctx, tmpPath)
	if err != nil {
		h.logger.Error("processing failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "processing failed")
		return
	}
	// report the client's filename, not the spool path
	ex.SourcePath = header.Filename

	jsonResponse(w, http.StatusOK, toResponse(ex))
}

// spoolUpload writes the upload to a temp file so the OCR binary can read
// it from disk.
func (h *Handler) spoolUpload(file io.Reader, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "posterscan-*."+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()
	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// HandleListExtractions returns recent extractions, newest first. The
// "limit" query parameter caps the page size.
func (h *Handler) HandleListExtractions(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 500 {
			jsonError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	extractions, err := h.repo.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("list extractions failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "could not list extractions")
		return
	}

	out := make([]extractionResponse, 0, len(extractions))
	for i := range extractions {
		resp := toResponse(&extractions[i])
		resp.Text = "" // keep listings light
		out = append(out, resp)
	}
	jsonResponse(w, http.StatusOK, map[string]any{"extractions": out})
}

// HandleGetExtraction returns one extraction by ID.
func (h *Handler) HandleGetExtraction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid extraction id")
		return
	}

	ex, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "extraction not found")
			return
		}
		h.logger.Error("get extraction failed", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "could not load extraction")
		return
	}
	jsonResponse(w, http.StatusOK, toResponse(ex))
}

func (h *Handler) HandleHealthz(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
