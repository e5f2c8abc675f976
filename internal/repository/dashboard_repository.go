package repository

import (
	"context"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
)

type DashboardRepository struct {
	DB *db.Postgres
}

type DashboardSummary struct {
	TotalRevenue     int64
	TotalExpense     int64
	ActiveProjects   int64
	CompletedCount   int64
	ClientCount      int64
	LeadCount        int64
	ConvertedLeads   int64
	UnpaidReceivable int64
}

type IncomePoint struct {
	Label   string
	Income  int64
	Expense int64
}

func (r DashboardRepository) Summary(ctx context.Context) (DashboardSummary, error) {
	var s DashboardSummary
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT SUM(amount) FROM transactions WHERE deleted_at IS NULL AND type='income'),0),
			COALESCE((SELECT SUM(amount) FROM transactions WHERE deleted_at IS NULL AND type='expense'),0),
			(SELECT COUNT(*) FROM projects WHERE deleted_at IS NULL AND status <> 'Selesai' AND status <> 'Dibatalkan'),
			(SELECT COUNT(*) FROM projects WHERE deleted_at IS NULL AND status = 'Selesai'),
			(SELECT COUNT(*) FROM clients WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM leads WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM leads WHERE deleted_at IS NULL AND status = 'Dikonversi'),
			COALESCE((SELECT SUM(total_cost - amount_paid) FROM projects WHERE deleted_at IS NULL AND total_cost > amount_paid),0)
	`).Scan(&s.TotalRevenue, &s.TotalExpense, &s.ActiveProjects, &s.CompletedCount,
		&s.ClientCount, &s.LeadCount, &s.ConvertedLeads, &s.UnpaidReceivable)
	return s, err
}

// IncomeSeries returns per-day income and expense totals for the trailing
// window. Days without transactions are absent from the result.
func (r DashboardRepository) IncomeSeries(ctx context.Context, days int) ([]IncomePoint, error) {
	start := time.Now().AddDate(0, 0, -days+1).Format("2006-01-02")
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT tx_date::text,
			COALESCE(SUM(amount) FILTER (WHERE type='income'),0),
			COALESCE(SUM(amount) FILTER (WHERE type='expense'),0)
		FROM transactions
		WHERE deleted_at IS NULL AND tx_date >= $1::date
		GROUP BY tx_date
		ORDER BY tx_date ASC
	`, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var points []IncomePoint
	for rows.Next() {
		var p IncomePoint
		if err := rows.Scan(&p.Label, &p.Income, &p.Expense); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
