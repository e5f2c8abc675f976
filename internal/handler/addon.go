package handler

import (
	"errors"
	"net/http"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type AddOnHandler struct {
	Repo repository.AddOnRepository
}

func (h AddOnHandler) RegisterRoutes(r chi.Router) {
	r.Get("/addons", h.list)
	r.Post("/addons", h.create)
	r.Put("/addons/{id}", h.update)
	r.Delete("/addons/{id}", h.delete)
}

type addOnPayload struct {
	Name  string `json:"name" validate:"required"`
	Price int64  `json:"price" validate:"min=0"`
}

func (h AddOnHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list addons", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, a := range items {
		resp = append(resp, addOnResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h AddOnHandler) create(w http.ResponseWriter, r *http.Request) {
	var req addOnPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	a, err := h.Repo.Create(r.Context(), repository.AddOnInput{Name: req.Name, Price: req.Price})
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create addon", err)
		return
	}
	writeJSON(w, http.StatusCreated, addOnResponse(*a))
}

func (h AddOnHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req addOnPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	a, err := h.Repo.Update(r.Context(), id, repository.AddOnInput{Name: req.Name, Price: req.Price})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "addon not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update addon", err)
		return
	}
	writeJSON(w, http.StatusOK, addOnResponse(*a))
}

func (h AddOnHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "addon not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete addon", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func addOnResponse(a domain.AddOn) map[string]any {
	return map[string]any{
		"id":    a.ID,
		"name":  a.Name,
		"price": a.Price,
	}
}
