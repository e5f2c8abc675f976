package handler

import (
	"errors"
	"net/http"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler struct {
	Repo repository.ProjectRepository
}

func (h ProjectHandler) RegisterRoutes(r chi.Router) {
	r.Get("/projects", h.list)
	r.Get("/projects/{id}", h.get)
	r.Post("/projects", h.create)
	r.Put("/projects/{id}", h.update)
	r.Delete("/projects/{id}", h.delete)
}

type projectPayload struct {
	ClientID    int64  `json:"clientId" validate:"required"`
	ProjectName string `json:"projectName" validate:"required"`
	ProjectType string `json:"projectType"`
	PackageID   *int64 `json:"packageId"`
	Status      string `json:"status"`
	Date        string `json:"date" validate:"required"`
	Deadline    *string `json:"deadline"`
	Location    string `json:"location"`
	Progress    int    `json:"progress" validate:"min=0,max=100"`
	TotalCost   int64  `json:"totalCost" validate:"min=0"`
	AmountPaid  int64  `json:"amountPaid" validate:"min=0"`
	Notes       string `json:"notes"`
}

func (p projectPayload) toInput() (repository.ProjectInput, error) {
	date, err := parseDateField(p.Date)
	if err != nil {
		return repository.ProjectInput{}, err
	}
	deadline, err := parseOptionalDateField(p.Deadline)
	if err != nil {
		return repository.ProjectInput{}, err
	}
	return repository.ProjectInput{
		ClientID:    p.ClientID,
		ProjectName: p.ProjectName,
		ProjectType: p.ProjectType,
		PackageID:   p.PackageID,
		Status:      p.Status,
		Date:        date,
		Deadline:    deadline,
		Location:    p.Location,
		Progress:    p.Progress,
		TotalCost:   p.TotalCost,
		AmountPaid:  p.AmountPaid,
		Notes:       p.Notes,
	}, nil
}

func (h ProjectHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list projects", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, p := range items {
		resp = append(resp, projectResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h ProjectHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	p, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "get project", err)
		return
	}
	writeJSON(w, http.StatusOK, projectResponse(*p))
}

func (h ProjectHandler) create(w http.ResponseWriter, r *http.Request) {
	var req projectPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	p, err := h.Repo.Create(r.Context(), in)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create project", err)
		return
	}
	writeJSON(w, http.StatusCreated, projectResponse(*p))
}

func (h ProjectHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req projectPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	p, err := h.Repo.Update(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update project", err)
		return
	}
	writeJSON(w, http.StatusOK, projectResponse(*p))
}

func (h ProjectHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete project", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func projectResponse(p domain.Project) map[string]any {
	var deadline *string
	if p.Deadline != nil {
		d := p.Deadline.Format(dateLayout)
		deadline = &d
	}
	return map[string]any{
		"id":          p.ID,
		"clientId":    p.ClientID,
		"projectName": p.ProjectName,
		"projectType": p.ProjectType,
		"packageId":   p.PackageID,
		"status":      p.Status,
		"date":        p.Date.Format(dateLayout),
		"deadline":    deadline,
		"location":    p.Location,
		"progress":    p.Progress,
		"totalCost":   p.TotalCost,
		"amountPaid":  p.AmountPaid,
		"remaining":   p.TotalCost - p.AmountPaid,
		"completed":   p.Status == domain.ProjectCompleted,
		"notes":       p.Notes,
	}
}
