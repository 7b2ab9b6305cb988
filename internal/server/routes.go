package server

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/extract", handler.HandleExtract)
	mux.HandleFunc("GET /v1/extractions", handler.HandleListExtractions)
	mux.HandleFunc("GET /v1/extractions/{id}", handler.HandleGetExtraction)
	mux.HandleFunc("GET /healthz", handler.HandleHealthz)
}
