package handler

import (
	"net/http"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type FeedbackHandler struct {
	Repo repository.FeedbackRepository
}

func (h FeedbackHandler) RegisterRoutes(r chi.Router) {
	r.Get("/feedback", h.list)
	r.Post("/feedback", h.create)
}

func (h FeedbackHandler) list(w http.ResponseWriter, r *http.Request) {
	var (
		items []domain.ClientFeedback
		err   error
	)
	if name := r.URL.Query().Get("clientName"); name != "" {
		items, err = h.Repo.ListByClientName(r.Context(), name)
	} else {
		items, err = h.Repo.List(r.Context(), 500)
	}
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list feedback", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, f := range items {
		resp = append(resp, feedbackResponse(f))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h FeedbackHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientName   string `json:"clientName" validate:"required"`
		Satisfaction string `json:"satisfaction"`
		Rating       int    `json:"rating" validate:"min=1,max=5"`
		Feedback     string `json:"feedback"`
		Date         string `json:"date"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}
	date, err := parseDateField(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	if date.IsZero() {
		date = time.Now()
	}
	f, err := h.Repo.Create(r.Context(), repository.FeedbackInput{
		ClientName:   req.ClientName,
		Satisfaction: req.Satisfaction,
		Rating:       req.Rating,
		Feedback:     req.Feedback,
		Date:         date,
	})
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create feedback", err)
		return
	}
	writeJSON(w, http.StatusCreated, feedbackResponse(*f))
}

func feedbackResponse(f domain.ClientFeedback) map[string]any {
	return map[string]any{
		"id":           f.ID,
		"clientName":   f.ClientName,
		"satisfaction": f.Satisfaction,
		"rating":       f.Rating,
		"feedback":     f.Feedback,
		"date":         f.Date.Format(dateLayout),
	}
}
