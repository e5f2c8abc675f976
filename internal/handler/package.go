package handler

import (
	"errors"
	"net/http"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type PackageHandler struct {
	Repo repository.PackageRepository
}

func (h PackageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/packages", h.list)
	r.Post("/packages", h.create)
	r.Put("/packages/{id}", h.update)
	r.Delete("/packages/{id}", h.delete)
}

type packagePayload struct {
	Name              string `json:"name" validate:"required"`
	Price             int64  `json:"price" validate:"min=0"`
	Description       string `json:"description"`
	DurationTimeframe string `json:"durationTimeframe"`
	Photographers     string `json:"photographers"`
	Videographers     string `json:"videographers"`
}

func (p packagePayload) toInput() repository.PackageInput {
	return repository.PackageInput{
		Name:              p.Name,
		Price:             p.Price,
		Description:       p.Description,
		DurationTimeframe: p.DurationTimeframe,
		Photographers:     p.Photographers,
		Videographers:     p.Videographers,
	}
}

func (h PackageHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list packages", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, p := range items {
		resp = append(resp, packageResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h PackageHandler) create(w http.ResponseWriter, r *http.Request) {
	var req packagePayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.Repo.Create(r.Context(), req.toInput())
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create package", err)
		return
	}
	writeJSON(w, http.StatusCreated, packageResponse(*p))
}

func (h PackageHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req packagePayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.Repo.Update(r.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "package not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update package", err)
		return
	}
	writeJSON(w, http.StatusOK, packageResponse(*p))
}

func (h PackageHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "package not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete package", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func packageResponse(p domain.Package) map[string]any {
	return map[string]any{
		"id":                p.ID,
		"name":              p.Name,
		"price":             p.Price,
		"description":       p.Description,
		"durationTimeframe": p.DurationTimeframe,
		"photographers":     p.Photographers,
		"videographers":     p.Videographers,
	}
}
