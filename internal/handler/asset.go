package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type AssetHandler struct {
	Repo repository.AssetRepository
}

func (h AssetHandler) RegisterRoutes(r chi.Router) {
	r.Get("/assets", h.list)
	r.Post("/assets", h.create)
	r.Put("/assets/{id}", h.update)
	r.Delete("/assets/{id}", h.delete)
}

type assetPayload struct {
	Name          string  `json:"name" validate:"required"`
	Category      string  `json:"category"`
	PurchaseDate  string  `json:"purchaseDate"`
	PurchasePrice int64   `json:"purchasePrice" validate:"min=0"`
	SerialNumber  *string `json:"serialNumber"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

func (p assetPayload) toInput() (repository.AssetInput, error) {
	purchased, err := parseDateField(p.PurchaseDate)
	if err != nil {
		return repository.AssetInput{}, err
	}
	if purchased.IsZero() {
		purchased = time.Now()
	}
	status := domain.AssetStatus(p.Status)
	if status == "" {
		status = domain.AssetAvailable
	}
	return repository.AssetInput{
		Name:          p.Name,
		Category:      p.Category,
		PurchaseDate:  purchased,
		PurchasePrice: p.PurchasePrice,
		SerialNumber:  p.SerialNumber,
		Status:        status,
		Notes:         p.Notes,
	}, nil
}

func (h AssetHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list assets", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, a := range items {
		resp = append(resp, assetResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h AssetHandler) create(w http.ResponseWriter, r *http.Request) {
	var req assetPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	a, err := h.Repo.Create(r.Context(), in)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create asset", err)
		return
	}
	writeJSON(w, http.StatusCreated, assetResponse(*a))
}

func (h AssetHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req assetPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	a, err := h.Repo.Update(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update asset", err)
		return
	}
	writeJSON(w, http.StatusOK, assetResponse(*a))
}

func (h AssetHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete asset", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func assetResponse(a domain.Asset) map[string]any {
	return map[string]any{
		"id":            a.ID,
		"name":          a.Name,
		"category":      a.Category,
		"purchaseDate":  a.PurchaseDate.Format(dateLayout),
		"purchasePrice": a.PurchasePrice,
		"serialNumber":  a.SerialNumber,
		"status":        string(a.Status),
		"notes":         a.Notes,
	}
}
