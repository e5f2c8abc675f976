package handler

import (
	"errors"
	"net/http"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type SOPHandler struct {
	Repo repository.SOPRepository
}

func (h SOPHandler) RegisterRoutes(r chi.Router) {
	r.Get("/sops", h.list)
	r.Post("/sops", h.create)
	r.Put("/sops/{id}", h.update)
	r.Delete("/sops/{id}", h.delete)
}

type sopPayload struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

func (h SOPHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list sops", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, s := range items {
		resp = append(resp, sopResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h SOPHandler) create(w http.ResponseWriter, r *http.Request) {
	var req sopPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	s, err := h.Repo.Create(r.Context(), repository.SOPInput{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
	})
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create sop", err)
		return
	}
	writeJSON(w, http.StatusCreated, sopResponse(*s))
}

func (h SOPHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req sopPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	s, err := h.Repo.Update(r.Context(), id, repository.SOPInput{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "sop not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update sop", err)
		return
	}
	writeJSON(w, http.StatusOK, sopResponse(*s))
}

func (h SOPHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "sop not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete sop", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func sopResponse(s domain.SOP) map[string]any {
	return map[string]any{
		"id":          s.ID,
		"title":       s.Title,
		"category":    s.Category,
		"content":     s.Content,
		"lastUpdated": s.LastUpdated.Format(dateLayout),
	}
}
