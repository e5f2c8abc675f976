package handler

import (
	"errors"
	"net/http"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	Repo repository.ProfileRepository
}

func (h ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.get)
	r.Put("/profile", h.upsert)
}

func (h ProfileHandler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Repo.Get(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not set")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "get profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse(*p))
}

func (h ProfileHandler) upsert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName          string   `json:"fullName" validate:"required"`
		Email             string   `json:"email" validate:"omitempty,email"`
		Phone             string   `json:"phone"`
		CompanyName       string   `json:"companyName"`
		Website           string   `json:"website"`
		Address           string   `json:"address"`
		BankAccount       string   `json:"bankAccount"`
		Bio               string   `json:"bio"`
		IncomeCategories  []string `json:"incomeCategories"`
		ExpenseCategories []string `json:"expenseCategories"`
		ProjectTypes      []string `json:"projectTypes"`
		EventTypes        []string `json:"eventTypes"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.Repo.Upsert(r.Context(), repository.ProfileInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		CompanyName:       req.CompanyName,
		Website:           req.Website,
		Address:           req.Address,
		BankAccount:       req.BankAccount,
		Bio:               req.Bio,
		IncomeCategories:  req.IncomeCategories,
		ExpenseCategories: req.ExpenseCategories,
		ProjectTypes:      req.ProjectTypes,
		EventTypes:        req.EventTypes,
	})
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "save profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse(*p))
}

func profileResponse(p domain.Profile) map[string]any {
	return map[string]any{
		"fullName":          p.FullName,
		"email":             p.Email,
		"phone":             p.Phone,
		"companyName":       p.CompanyName,
		"website":           p.Website,
		"address":           p.Address,
		"bankAccount":       p.BankAccount,
		"bio":               p.Bio,
		"incomeCategories":  p.IncomeCategories,
		"expenseCategories": p.ExpenseCategories,
		"projectTypes":      p.ProjectTypes,
		"eventTypes":        p.EventTypes,
	}
}
