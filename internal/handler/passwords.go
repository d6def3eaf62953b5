package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/passgen/passgen-go/internal/generator"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
	"github.com/passgen/passgen-go/internal/wordlist"
)

// PasswordHandler handles HTTP requests for generation, evaluation, history
// and export.
type PasswordHandler struct {
	service *service.PasswordService
}

// NewPasswordHandler creates a new PasswordHandler.
func NewPasswordHandler(svc *service.PasswordService) *PasswordHandler {
	return &PasswordHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *PasswordHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if err.Error() == "http: request body too large" {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleEvaluate handles POST /api/v1/evaluate requests.
func (h *PasswordHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	var req model.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Evaluate(req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordMissing) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleListHistory handles GET /api/v1/history requests.
func (h *PasswordHandler) HandleListHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.History())
}

// HandleClearHistory handles DELETE /api/v1/history requests.
func (h *PasswordHandler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	h.service.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

// HandleExport handles GET /api/v1/history/{entry_id}/export requests.
// format=json (default) returns the metadata payload; format=txt returns the
// bare password.
func (h *PasswordHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entry_id")
	if entryID == "" || len(entryID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid entry id"))
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		payload, err := h.service.Export(entryID)
		if err != nil {
			writeExportError(w, err)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="password.json"`)
		writeJSON(w, http.StatusOK, payload)
	case "txt":
		password, err := h.service.ExportText(entryID)
		if err != nil {
			writeExportError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="password.txt"`)
		w.Write([]byte(password))
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse("unsupported export format"))
	}
}

func writeGenerateError(w http.ResponseWriter, err error) {
	switch {
	case generator.IsConfigError(err), errors.Is(err, service.ErrUnknownType):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, generator.ErrGenerationExhausted):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
	case errors.Is(err, wordlist.ErrVocabularyUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func writeExportError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrEntryNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
