package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/report"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

// ClientReportHandler builds client performance reports. Collections are
// loaded whole and aggregated in memory so every request reflects the
// current data without precomputed rollups.
type ClientReportHandler struct {
	Clients      repository.ClientRepository
	Projects     repository.ProjectRepository
	Transactions repository.TransactionRepository
}

func (h ClientReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/clients/summary", h.summary)
	r.Get("/reports/clients/export", h.export)
}

var errBadClientID = errors.New("invalid clientId")

type reportData struct {
	clients  []domain.Client
	projects []domain.Project
	txs      []domain.Transaction
	period   report.Period
}

func (h ClientReportHandler) load(r *http.Request) (reportData, error) {
	ctx := r.Context()
	period := report.ParsePeriod(r.URL.Query().Get("period"))
	now := time.Now()

	clientID := report.RelationAll
	if v := r.URL.Query().Get("clientId"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return reportData{}, errBadClientID
		}
		clientID = parsed
	}

	clients, err := h.Clients.List(ctx, 2000)
	if err != nil {
		return reportData{}, fmt.Errorf("load clients: %w", err)
	}
	projects, err := h.Projects.List(ctx, 2000)
	if err != nil {
		return reportData{}, fmt.Errorf("load projects: %w", err)
	}
	txs, err := h.Transactions.List(ctx, 5000)
	if err != nil {
		return reportData{}, fmt.Errorf("load transactions: %w", err)
	}

	projects = report.FilterProjectsByPeriod(projects, period, now)
	projects = report.FilterProjectsByClient(projects, clientID)
	txs = report.FilterTransactionsByPeriod(txs, period, now)
	if clientID != report.RelationAll {
		txs = report.FilterTransactionsByProjects(txs, projects)
	}

	return reportData{
		clients:  clients,
		projects: projects,
		txs:      txs,
		period:   period,
	}, nil
}

func (h ClientReportHandler) summary(w http.ResponseWriter, r *http.Request) {
	data, err := h.load(r)
	if err != nil {
		if errors.Is(err, errBadClientID) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "build report", err)
		return
	}

	sum := report.Summarize(data.projects, data.txs)
	rows := report.ClientPerformance(data.clients, data.projects, data.txs)

	clientRows := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		clientRows = append(clientRows, map[string]any{
			"clientId":            row.Client.ID,
			"clientName":          row.Client.Name,
			"totalProjects":       row.TotalProjects,
			"completedProjects":   row.CompletedProjects,
			"totalRevenue":        row.TotalRevenue,
			"averageProjectValue": row.AverageProjectValue,
			"completionRate":      report.RoundRate(row.CompletionRate),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"period": string(data.period),
		"summary": map[string]any{
			"totalRevenue":      sum.TotalRevenue,
			"totalProjects":     sum.TotalProjects,
			"completedProjects": sum.CompletedProjects,
			"activeClients":     sum.ActiveClients,
		},
		"clients": clientRows,
	})
}

func (h ClientReportHandler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	reportType := r.URL.Query().Get("type")
	if reportType == "" {
		reportType = "summary"
	}

	data, err := h.load(r)
	if err != nil {
		if errors.Is(err, errBadClientID) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "build report", err)
		return
	}

	var (
		name    string
		headers []string
		rows    [][]string
	)
	switch reportType {
	case "summary":
		name = "laporan-klien"
		headers, rows = summaryRows(data)
	case "detailed":
		name = "laporan-detail-klien"
		headers, rows = detailedRows(data)
	default:
		writeError(w, http.StatusBadRequest, "invalid type (use summary or detailed)")
		return
	}

	switch format {
	case "csv":
		payload, err := report.BuildCSV(headers, rows)
		if err != nil {
			writeErrorWithErr(w, http.StatusInternalServerError, "encode csv", err)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", report.ExportFilename(name, data.period, time.Now())))
		_, _ = w.Write(payload)
	case "xlsx", "excel":
		payload, err := buildReportXLSX(headers, rows)
		if err != nil {
			writeErrorWithErr(w, http.StatusInternalServerError, "encode xlsx", err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		filename := fmt.Sprintf("%s-%s-%d.xlsx", name, data.period, time.Now().UnixMilli())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, _ = w.Write(payload)
	default:
		writeError(w, http.StatusBadRequest, "invalid format (use csv or xlsx)")
	}
}

func summaryRows(data reportData) ([]string, [][]string) {
	headers := []string{"Nama Klien", "Total Proyek", "Proyek Selesai", "Total Revenue", "Rata-rata Nilai Proyek", "Completion Rate (%)"}
	perf := report.ClientPerformance(data.clients, data.projects, data.txs)
	rows := make([][]string, 0, len(perf))
	for _, row := range perf {
		rows = append(rows, []string{
			row.Client.Name,
			strconv.Itoa(row.TotalProjects),
			strconv.Itoa(row.CompletedProjects),
			strconv.FormatInt(row.TotalRevenue, 10),
			strconv.FormatInt(row.AverageProjectValue, 10),
			strconv.Itoa(report.RoundRate(row.CompletionRate)),
		})
	}
	return headers, rows
}

func detailedRows(data reportData) ([]string, [][]string) {
	headers := []string{"Nama Klien", "Nama Proyek", "Tanggal", "Status", "Total Biaya", "Dibayar", "Lokasi"}
	names := make(map[int64]string, len(data.clients))
	for _, c := range data.clients {
		names[c.ID] = c.Name
	}
	rows := make([][]string, 0, len(data.projects))
	for _, p := range data.projects {
		name, ok := names[p.ClientID]
		if !ok {
			name = "N/A"
		}
		rows = append(rows, []string{
			name,
			p.ProjectName,
			p.Date.Format("02/01/2006"),
			p.Status,
			strconv.FormatInt(p.TotalCost, 10),
			strconv.FormatInt(p.AmountPaid, 10),
			p.Location,
		})
	}
	return headers, rows
}

func buildReportXLSX(headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Laporan Klien"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for c, v := range headers {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "B", 28)
	_ = f.SetColWidth(sheet, "C", "G", 18)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheet, "A1", lastHeader, style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
