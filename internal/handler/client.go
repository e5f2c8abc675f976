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

type ClientHandler struct {
	Repo     repository.ClientRepository
	Projects repository.ProjectRepository
}

func (h ClientHandler) RegisterRoutes(r chi.Router) {
	r.Get("/clients", h.list)
	r.Get("/clients/{id}", h.get)
	r.Get("/clients/{id}/projects", h.listProjects)
	r.Post("/clients", h.create)
	r.Put("/clients/{id}", h.update)
	r.Delete("/clients/{id}", h.delete)
}

type clientPayload struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Instagram   string `json:"instagram"`
	ClientType  string `json:"clientType"`
	Status      string `json:"status"`
	Since       string `json:"since"`
	LastContact string `json:"lastContact"`
}

func (p clientPayload) toInput() (repository.ClientInput, error) {
	since, err := parseDateField(p.Since)
	if err != nil {
		return repository.ClientInput{}, err
	}
	lastContact, err := parseDateField(p.LastContact)
	if err != nil {
		return repository.ClientInput{}, err
	}
	if since.IsZero() {
		since = time.Now()
	}
	if lastContact.IsZero() {
		lastContact = since
	}
	status := domain.ClientStatus(p.Status)
	if status == "" {
		status = domain.ClientActive
	}
	return repository.ClientInput{
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Instagram:   p.Instagram,
		ClientType:  p.ClientType,
		Status:      status,
		Since:       since,
		LastContact: lastContact,
	}, nil
}

func (h ClientHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list clients", err)
		return
	}
	if q := r.URL.Query().Get("q"); q != "" {
		items = report.SearchClients(items, q)
	}
	resp := make([]map[string]any, 0, len(items))
	for _, c := range items {
		resp = append(resp, clientResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h ClientHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	c, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "client not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "get client", err)
		return
	}
	writeJSON(w, http.StatusOK, clientResponse(*c))
}

func (h ClientHandler) listProjects(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	items, err := h.Projects.ListByClient(r.Context(), id)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list client projects", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, p := range items {
		resp = append(resp, projectResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h ClientHandler) create(w http.ResponseWriter, r *http.Request) {
	var req clientPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	c, err := h.Repo.Create(r.Context(), in)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create client", err)
		return
	}
	writeJSON(w, http.StatusCreated, clientResponse(*c))
}

func (h ClientHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req clientPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	c, err := h.Repo.Update(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "client not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update client", err)
		return
	}
	writeJSON(w, http.StatusOK, clientResponse(*c))
}

func (h ClientHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "client not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete client", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func clientResponse(c domain.Client) map[string]any {
	return map[string]any{
		"id":             c.ID,
		"name":           c.Name,
		"email":          c.Email,
		"phone":          c.Phone,
		"instagram":      c.Instagram,
		"clientType":     c.ClientType,
		"status":         string(c.Status),
		"since":          c.Since.Format(dateLayout),
		"lastContact":    c.LastContact.Format(dateLayout),
		"portalAccessId": c.PortalAccessID,
	}
}
