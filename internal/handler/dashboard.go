package handler

import (
	"net/http"
	"strconv"

	"github.com/ekivenapictured-ship-it/venaok/internal/report"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	Repo repository.DashboardRepository
}

func (h DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/summary", h.summary)
	r.Get("/dashboard/income-series", h.incomeSeries)
}

func (h DashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.Summary(r.Context())
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "dashboard summary", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalRevenue":        s.TotalRevenue,
		"totalExpense":        s.TotalExpense,
		"netProfit":           s.TotalRevenue - s.TotalExpense,
		"totalRevenueLabel":   report.FormatRupiah(s.TotalRevenue),
		"activeProjects":      s.ActiveProjects,
		"completedProjects":   s.CompletedCount,
		"clientCount":         s.ClientCount,
		"leadCount":           s.LeadCount,
		"convertedLeads":      s.ConvertedLeads,
		"unpaidReceivable":      s.UnpaidReceivable,
		"unpaidReceivableLabel": report.FormatRupiah(s.UnpaidReceivable),
	})
}

func (h DashboardHandler) incomeSeries(w http.ResponseWriter, r *http.Request) {
	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 365 {
			writeError(w, http.StatusBadRequest, "days must be between 1 and 365")
			return
		}
		days = parsed
	}
	points, err := h.Repo.IncomeSeries(r.Context(), days)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "income series", err)
		return
	}
	resp := make([]map[string]any, 0, len(points))
	for _, p := range points {
		resp = append(resp, map[string]any{
			"date":    p.Label,
			"income":  p.Income,
			"expense": p.Expense,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
