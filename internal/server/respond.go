package server

import (
	"encoding/json"
	"net/http"
)

func jsonResponse(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, status int, message string) error {
	return jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
