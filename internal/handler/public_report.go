package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/report"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

// PublicReportHandler serves the client portal: a read-only project and
// payment summary reachable by the client's portal access id, no login.
type PublicReportHandler struct {
	Clients      repository.ClientRepository
	Projects     repository.ProjectRepository
	Transactions repository.TransactionRepository
	Feedback     repository.FeedbackRepository
}

func (h PublicReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/public/report/{portalID}", h.report)
	r.Post("/public/report/{portalID}/feedback", h.submitFeedback)
}

func (h PublicReportHandler) report(w http.ResponseWriter, r *http.Request) {
	portalID := chi.URLParam(r, "portalID")

	client, err := h.Clients.GetByPortalID(r.Context(), portalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "report not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "load client", err)
		return
	}

	projects, err := h.Projects.ListByClient(r.Context(), client.ID)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "load projects", err)
		return
	}
	txs, err := h.Transactions.ListByClient(r.Context(), client.ID)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "load transactions", err)
		return
	}

	revenue := report.TotalRevenue(txs)
	completed := report.CountCompleted(projects)

	projectRows := make([]map[string]any, 0, len(projects))
	var totalCost, totalPaid int64
	for _, p := range projects {
		totalCost += p.TotalCost
		totalPaid += p.AmountPaid
		projectRows = append(projectRows, map[string]any{
			"projectName": p.ProjectName,
			"projectType": p.ProjectType,
			"status":      p.Status,
			"date":        p.Date.Format(dateLayout),
			"progress":    p.Progress,
			"totalCost":   report.FormatRupiah(p.TotalCost),
			"amountPaid":  report.FormatRupiah(p.AmountPaid),
			"remaining":   report.FormatRupiah(p.TotalCost - p.AmountPaid),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"clientName": client.Name,
		"since":      client.Since.Format(dateLayout),
		"summary": map[string]any{
			"totalProjects":     len(projects),
			"completedProjects": completed,
			"completionRate":    report.RoundRate(report.CompletionRate(completed, len(projects))),
			"totalRevenue":      report.FormatRupiah(revenue),
			"totalCost":         report.FormatRupiah(totalCost),
			"totalPaid":         report.FormatRupiah(totalPaid),
			"outstanding":       report.FormatRupiah(totalCost - totalPaid),
		},
		"projects": projectRows,
	})
}

func (h PublicReportHandler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	portalID := chi.URLParam(r, "portalID")

	client, err := h.Clients.GetByPortalID(r.Context(), portalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "report not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "load client", err)
		return
	}

	var req struct {
		Satisfaction string `json:"satisfaction"`
		Rating       int    `json:"rating" validate:"min=1,max=5"`
		Feedback     string `json:"feedback" validate:"required"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}
	f, err := h.Feedback.Create(r.Context(), repository.FeedbackInput{
		ClientName:   client.Name,
		Satisfaction: req.Satisfaction,
		Rating:       req.Rating,
		Feedback:     req.Feedback,
		Date:         time.Now(),
	})
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "save feedback", err)
		return
	}
	writeJSON(w, http.StatusCreated, feedbackResponse(*f))
}
