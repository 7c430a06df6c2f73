package podcast

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"paperpod/internal/adapter/gemini"
	"paperpod/internal/extract"
	"paperpod/internal/fetch"
)

type Handler struct {
	service        *Service
	maxUploadBytes int64
}

func NewHandler(service *Service, maxUploadBytes int64) *Handler {
	return &Handler{service: service, maxUploadBytes: maxUploadBytes}
}

// Generate accepts either a JSON body {"source": "<url>"} or a multipart
// form with a "file" field. The source variant is decided here, once, and
// flows through the pipeline as a tagged descriptor.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	src, ok := h.readSource(w, r)
	if !ok {
		return
	}

	result, err := h.service.Generate(r.Context(), src)
	if err != nil {
		slog.ErrorContext(r.Context(), "generation pipeline failed", "error", err)
		h.writeError(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) readSource(w http.ResponseWriter, r *http.Request) (fetch.Source, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		return h.readUpload(w, r)
	}

	var req struct {
		Source string `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return fetch.Source{}, false
	}
	if req.Source == "" {
		h.writeError(w, "no source URL provided", http.StatusBadRequest)
		return fetch.Source{}, false
	}
	return fetch.RemoteURL(req.Source), true
}

func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (fetch.Source, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.writeError(w, "file too large or malformed upload", http.StatusBadRequest)
		return fetch.Source{}, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, "no file provided", http.StatusBadRequest)
		return fetch.Source{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, "unable to read uploaded file", http.StatusBadRequest)
		return fetch.Source{}, false
	}

	return fetch.UploadedFile(data, header.Filename), true
}

// statusFor maps the error taxonomy to response classes: bad input is the
// client's fault, provider failures are upstream.
func statusFor(err error) int {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, extract.ErrExtraction):
		return http.StatusBadRequest
	case errors.Is(err, fetch.ErrFetch):
		return http.StatusBadGateway
	case errors.Is(err, gemini.ErrGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}
