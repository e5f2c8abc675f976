package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/report"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type LeadHandler struct {
	Repo repository.LeadRepository
}

func (h LeadHandler) RegisterRoutes(r chi.Router) {
	r.Get("/leads", h.list)
	r.Post("/leads", h.create)
	r.Put("/leads/{id}", h.update)
	r.Delete("/leads/{id}", h.delete)
}

type leadPayload struct {
	Name           string `json:"name" validate:"required"`
	ContactChannel string `json:"contactChannel"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Date           string `json:"date"`
	Notes          string `json:"notes"`
}

func (p leadPayload) toInput() (repository.LeadInput, error) {
	date, err := parseDateField(p.Date)
	if err != nil {
		return repository.LeadInput{}, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	status := domain.LeadStatus(p.Status)
	if status == "" {
		status = domain.LeadDiscussion
	}
	return repository.LeadInput{
		Name:           p.Name,
		ContactChannel: p.ContactChannel,
		Location:       p.Location,
		Status:         status,
		Date:           date,
		Notes:          p.Notes,
	}, nil
}

func (h LeadHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list leads", err)
		return
	}
	if q := r.URL.Query().Get("q"); q != "" {
		items = report.SearchLeads(items, q)
	}
	resp := make([]map[string]any, 0, len(items))
	for _, l := range items {
		resp = append(resp, leadResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h LeadHandler) create(w http.ResponseWriter, r *http.Request) {
	var req leadPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	l, err := h.Repo.Create(r.Context(), in)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create lead", err)
		return
	}
	writeJSON(w, http.StatusCreated, leadResponse(*l))
}

func (h LeadHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req leadPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	l, err := h.Repo.Update(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "lead not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update lead", err)
		return
	}
	writeJSON(w, http.StatusOK, leadResponse(*l))
}

func (h LeadHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "lead not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete lead", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func leadResponse(l domain.Lead) map[string]any {
	return map[string]any{
		"id":             l.ID,
		"name":           l.Name,
		"contactChannel": l.ContactChannel,
		"location":       l.Location,
		"status":         string(l.Status),
		"date":           l.Date.Format(dateLayout),
		"notes":          l.Notes,
	}
}
