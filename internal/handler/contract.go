package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type ContractHandler struct {
	Repo repository.ContractRepository
}

func (h ContractHandler) RegisterRoutes(r chi.Router) {
	r.Get("/contracts", h.list)
	r.Get("/contracts/{id}", h.get)
	r.Post("/contracts", h.create)
	r.Put("/contracts/{id}", h.update)
	r.Post("/contracts/{id}/sign", h.sign)
	r.Delete("/contracts/{id}", h.delete)
}

type contractPayload struct {
	ContractNumber  string `json:"contractNumber" validate:"required"`
	ClientID        int64  `json:"clientId" validate:"required"`
	ProjectID       *int64 `json:"projectId"`
	SigningDate     string `json:"signingDate"`
	SigningLocation string `json:"signingLocation"`
	ClientName1     string `json:"clientName1"`
	ClientAddress1  string `json:"clientAddress1"`
	ClientPhone1    string `json:"clientPhone1"`
	ShootingDetails string `json:"shootingDetails"`
	PaymentTerms    string `json:"paymentTerms"`
	Cancellation    string `json:"cancellation"`
	Jurisdiction    string `json:"jurisdiction"`
}

func (p contractPayload) toInput() (repository.ContractInput, error) {
	signing, err := parseDateField(p.SigningDate)
	if err != nil {
		return repository.ContractInput{}, err
	}
	if signing.IsZero() {
		signing = time.Now()
	}
	return repository.ContractInput{
		ContractNumber:  p.ContractNumber,
		ClientID:        p.ClientID,
		ProjectID:       p.ProjectID,
		SigningDate:     signing,
		SigningLocation: p.SigningLocation,
		ClientName1:     p.ClientName1,
		ClientAddress1:  p.ClientAddress1,
		ClientPhone1:    p.ClientPhone1,
		ShootingDetails: p.ShootingDetails,
		PaymentTerms:    p.PaymentTerms,
		Cancellation:    p.Cancellation,
		Jurisdiction:    p.Jurisdiction,
	}, nil
}

func (h ContractHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list contracts", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, c := range items {
		resp = append(resp, contractResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h ContractHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	c, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "contract not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "get contract", err)
		return
	}
	writeJSON(w, http.StatusOK, contractResponse(*c))
}

func (h ContractHandler) create(w http.ResponseWriter, r *http.Request) {
	var req contractPayload
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
		if repository.IsDuplicate(err) {
			writeError(w, http.StatusConflict, "contract number already used")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "create contract", err)
		return
	}
	writeJSON(w, http.StatusCreated, contractResponse(*c))
}

func (h ContractHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req contractPayload
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
			writeError(w, http.StatusNotFound, "contract not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update contract", err)
		return
	}
	writeJSON(w, http.StatusOK, contractResponse(*c))
}

func (h ContractHandler) sign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		Party     string `json:"party" validate:"required,oneof=vendor client"`
		Signature string `json:"signature" validate:"required"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}
	c, err := h.Repo.Sign(r.Context(), id, req.Party, req.Signature)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "contract not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "sign contract", err)
		return
	}
	writeJSON(w, http.StatusOK, contractResponse(*c))
}

func (h ContractHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "contract not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete contract", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func contractResponse(c domain.Contract) map[string]any {
	return map[string]any{
		"id":              c.ID,
		"contractNumber":  c.ContractNumber,
		"clientId":        c.ClientID,
		"projectId":       c.ProjectID,
		"signingDate":     c.SigningDate.Format(dateLayout),
		"signingLocation": c.SigningLocation,
		"clientName1":     c.ClientName1,
		"clientAddress1":  c.ClientAddress1,
		"clientPhone1":    c.ClientPhone1,
		"shootingDetails": c.ShootingDetails,
		"paymentTerms":    c.PaymentTerms,
		"cancellation":    c.Cancellation,
		"jurisdiction":    c.Jurisdiction,
		"vendorSignature": c.VendorSignature,
		"clientSignature": c.ClientSignature,
	}
}
