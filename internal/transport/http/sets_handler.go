package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"jeopardy-board-service/internal/app"
	"jeopardy-board-service/internal/domain"
)

// SetsHandler exposes the question-set repository over REST: authoring tools
// list, save, delete, export and import named boards here.
type SetsHandler struct {
	sets *app.SetService
}

func NewSetsHandler(sets *app.SetService) *SetsHandler {
	return &SetsHandler{sets: sets}
}

// Register mounts the set routes on mux.
func (h *SetsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /sets", h.list)
	mux.HandleFunc("POST /sets", h.save)
	mux.HandleFunc("DELETE /sets/{id}", h.delete)
	mux.HandleFunc("GET /sets/{id}/export", h.export)
	mux.HandleFunc("POST /sets/import", h.importSet)
}

func (h *SetsHandler) list(w http.ResponseWriter, r *http.Request) {
	sets, err := h.sets.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sets)
}

type saveRequest struct {
	Name      string               `json:"name"`
	Questions domain.GameQuestions `json:"questions"`
}

func (h *SetsHandler) save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	set, err := h.sets.Save(r.Context(), req.Name, req.Questions)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

func (h *SetsHandler) delete(w http.ResponseWriter, r *http.Request) {
	existed, err := h.sets.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": existed})
}

func (h *SetsHandler) export(w http.ResponseWriter, r *http.Request) {
	set, err := h.sets.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	payload, err := h.sets.Export(set)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(payload))
}

func (h *SetsHandler) importSet(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}
	set, err := h.sets.Import(r.Context(), string(payload))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

// statusFor maps the error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSetNotFound), errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrImport), errors.Is(err, domain.ErrInvalidSet), errors.Is(err, domain.ErrInvalidRoster):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
