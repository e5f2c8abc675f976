package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/ekivenapictured-ship-it/venaok/internal/service"
	"github.com/go-chi/chi/v5"
)

type PromoCodeHandler struct {
	Repo    repository.PromoCodeRepository
	Service service.PromoService
}

func (h PromoCodeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/promo-codes", h.list)
	r.Post("/promo-codes", h.create)
	r.Put("/promo-codes/{id}", h.update)
	r.Post("/promo-codes/{id}/toggle", h.toggle)
	r.Post("/promo-codes/validate", h.validateCode)
	r.Post("/promo-codes/redeem", h.redeem)
	r.Delete("/promo-codes/{id}", h.delete)
}

type promoCodePayload struct {
	Code          string  `json:"code" validate:"required"`
	DiscountType  string  `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue int64   `json:"discountValue" validate:"required,gt=0"`
	IsActive      bool    `json:"isActive"`
	MaxUsage      *int    `json:"maxUsage" validate:"omitempty,gt=0"`
	ExpiryDate    *string `json:"expiryDate"`
}

func (p promoCodePayload) toInput() (repository.PromoCodeInput, error) {
	expiry, err := parseOptionalDateField(p.ExpiryDate)
	if err != nil {
		return repository.PromoCodeInput{}, err
	}
	return repository.PromoCodeInput{
		Code:          strings.ToUpper(strings.TrimSpace(p.Code)),
		DiscountType:  domain.DiscountType(p.DiscountType),
		DiscountValue: p.DiscountValue,
		IsActive:      p.IsActive,
		MaxUsage:      p.MaxUsage,
		ExpiryDate:    expiry,
	}, nil
}

func (h PromoCodeHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 200)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list promo codes", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, p := range items {
		resp = append(resp, promoCodeResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h PromoCodeHandler) create(w http.ResponseWriter, r *http.Request) {
	var req promoCodePayload
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
		if repository.IsDuplicate(err) {
			writeError(w, http.StatusConflict, "promo code already exists")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "create promo code", err)
		return
	}
	writeJSON(w, http.StatusCreated, promoCodeResponse(*p))
}

func (h PromoCodeHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req promoCodePayload
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
			writeError(w, http.StatusNotFound, "promo code not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update promo code", err)
		return
	}
	writeJSON(w, http.StatusOK, promoCodeResponse(*p))
}

func (h PromoCodeHandler) toggle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	p, err := h.Repo.SetActive(r.Context(), id, req.IsActive)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "promo code not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "toggle promo code", err)
		return
	}
	writeJSON(w, http.StatusOK, promoCodeResponse(*p))
}

func (h PromoCodeHandler) validateCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code   string `json:"code" validate:"required"`
		Amount int64  `json:"amount"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.Service.Validate(r.Context(), req.Code)
	if err != nil {
		writePromoError(w, err)
		return
	}
	resp := map[string]any{
		"valid": true,
		"promo": promoCodeResponse(*p),
	}
	if req.Amount > 0 {
		resp["discount"] = service.DiscountAmount(*p, req.Amount)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h PromoCodeHandler) redeem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code" validate:"required"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.Service.Redeem(r.Context(), req.Code)
	if err != nil {
		writePromoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promoCodeResponse(*p))
}

func (h PromoCodeHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "promo code not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete promo code", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writePromoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "promo code not found")
	case errors.Is(err, service.ErrPromoInactive),
		errors.Is(err, service.ErrPromoExpired),
		errors.Is(err, service.ErrPromoExhausted):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeErrorWithErr(w, http.StatusInternalServerError, "promo code check", err)
	}
}

func promoCodeResponse(p domain.PromoCode) map[string]any {
	var expiry *string
	if p.ExpiryDate != nil {
		d := p.ExpiryDate.Format(dateLayout)
		expiry = &d
	}
	return map[string]any{
		"id":            p.ID,
		"code":          p.Code,
		"discountType":  string(p.DiscountType),
		"discountValue": p.DiscountValue,
		"isActive":      p.IsActive,
		"usageCount":    p.UsageCount,
		"maxUsage":      p.MaxUsage,
		"expiryDate":    expiry,
	}
}
