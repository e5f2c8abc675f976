package handler

import (
	"errors"
	"net/http"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type TeamMemberHandler struct {
	Repo repository.TeamMemberRepository
}

func (h TeamMemberHandler) RegisterRoutes(r chi.Router) {
	r.Get("/team-members", h.list)
	r.Post("/team-members", h.create)
	r.Put("/team-members/{id}", h.update)
	r.Delete("/team-members/{id}", h.delete)
}

type teamMemberPayload struct {
	Name        string  `json:"name" validate:"required"`
	Role        string  `json:"role"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Phone       string  `json:"phone"`
	StandardFee int64   `json:"standardFee" validate:"min=0"`
	Rating      float64 `json:"rating" validate:"min=0,max=5"`
}

func (p teamMemberPayload) toInput() repository.TeamMemberInput {
	return repository.TeamMemberInput{
		Name:        p.Name,
		Role:        p.Role,
		Email:       p.Email,
		Phone:       p.Phone,
		StandardFee: p.StandardFee,
		Rating:      p.Rating,
	}
}

func (h TeamMemberHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list team members", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, m := range items {
		resp = append(resp, teamMemberResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h TeamMemberHandler) create(w http.ResponseWriter, r *http.Request) {
	var req teamMemberPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	m, err := h.Repo.Create(r.Context(), req.toInput())
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create team member", err)
		return
	}
	writeJSON(w, http.StatusCreated, teamMemberResponse(*m))
}

func (h TeamMemberHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req teamMemberPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	m, err := h.Repo.Update(r.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "team member not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update team member", err)
		return
	}
	writeJSON(w, http.StatusOK, teamMemberResponse(*m))
}

func (h TeamMemberHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "team member not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete team member", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func teamMemberResponse(m domain.TeamMember) map[string]any {
	return map[string]any{
		"id":          m.ID,
		"name":        m.Name,
		"role":        m.Role,
		"email":       m.Email,
		"phone":       m.Phone,
		"standardFee": m.StandardFee,
		"rating":      m.Rating,
	}
}
