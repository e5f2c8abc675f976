package handler

import (
	"errors"
	"net/http"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type TransactionHandler struct {
	Repo repository.TransactionRepository
}

func (h TransactionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/transactions", h.list)
	r.Post("/transactions", h.create)
	r.Put("/transactions/{id}", h.update)
	r.Delete("/transactions/{id}", h.delete)
}

type transactionPayload struct {
	ProjectID   *int64 `json:"projectId"`
	ClientID    *int64 `json:"clientId"`
	Type        string `json:"type" validate:"required,oneof=income expense"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Method      string `json:"method"`
	Date        string `json:"date" validate:"required"`
}

func (p transactionPayload) toInput() (repository.TransactionInput, error) {
	date, err := parseDateField(p.Date)
	if err != nil {
		return repository.TransactionInput{}, err
	}
	return repository.TransactionInput{
		ProjectID:   p.ProjectID,
		ClientID:    p.ClientID,
		Type:        domain.TransactionType(p.Type),
		Amount:      p.Amount,
		Category:    p.Category,
		Description: p.Description,
		Method:      p.Method,
		Date:        date,
	}, nil
}

func (h TransactionHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 1000)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list transactions", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, t := range items {
		resp = append(resp, transactionResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h TransactionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req transactionPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	t, err := h.Repo.Create(r.Context(), in)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create transaction", err)
		return
	}
	writeJSON(w, http.StatusCreated, transactionResponse(*t))
}

func (h TransactionHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req transactionPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	t, err := h.Repo.Update(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, transactionResponse(*t))
}

func (h TransactionHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func transactionResponse(t domain.Transaction) map[string]any {
	return map[string]any{
		"id":          t.ID,
		"projectId":   t.ProjectID,
		"clientId":    t.ClientID,
		"type":        string(t.Type),
		"amount":      t.Amount,
		"category":    t.Category,
		"description": t.Description,
		"method":      t.Method,
		"date":        t.Date.Format(dateLayout),
	}
}
