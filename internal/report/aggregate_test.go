package report

import (
	"testing"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
)

func TestTotalRevenueSkipsExpenses(t *testing.T) {
	txs := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: 1_000_000},
		{Type: domain.TransactionExpense, Amount: 300_000},
		{Type: domain.TransactionIncome, Amount: 500_000},
	}
	if got := TotalRevenue(txs); got != 1_500_000 {
		t.Fatalf("TotalRevenue = %d, want 1500000", got)
	}
}

func TestTotalRevenueOrderInvariant(t *testing.T) {
	txs := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: 250_000},
		{Type: domain.TransactionExpense, Amount: 75_000},
		{Type: domain.TransactionIncome, Amount: 1_250_000},
		{Type: domain.TransactionIncome, Amount: 40_000},
	}
	forward := TotalRevenue(txs)
	reversed := make([]domain.Transaction, 0, len(txs))
	for i := len(txs) - 1; i >= 0; i-- {
		reversed = append(reversed, txs[i])
	}
	if got := TotalRevenue(reversed); got != forward {
		t.Fatalf("revenue changed under reordering: %d vs %d", got, forward)
	}
}

func TestCompletionRate(t *testing.T) {
	cases := []struct {
		completed, total int
		wantRounded      int
	}{
		{0, 0, 0},
		{3, 4, 75},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
	}
	for _, c := range cases {
		if got := RoundRate(CompletionRate(c.completed, c.total)); got != c.wantRounded {
			t.Errorf("CompletionRate(%d, %d) rounded = %d, want %d", c.completed, c.total, got, c.wantRounded)
		}
	}
}

func TestAverageProjectValue(t *testing.T) {
	if got := AverageProjectValue(2_000_000, 2); got != 1_000_000 {
		t.Errorf("average = %d, want 1000000", got)
	}
	if got := AverageProjectValue(2_000_000, 0); got != 0 {
		t.Errorf("average with zero projects = %d, want 0", got)
	}
}

func TestSummarize(t *testing.T) {
	projects := []domain.Project{
		{ID: 1, ClientID: 10, Status: domain.ProjectCompleted},
		{ID: 2, ClientID: 10, Status: "Dalam Proses"},
		{ID: 3, ClientID: 20, Status: domain.ProjectCompleted},
		{ID: 4, ClientID: 30, Status: domain.ProjectCompleted},
	}
	p1 := int64(1)
	txs := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: 800_000, ProjectID: &p1},
		{Type: domain.TransactionExpense, Amount: 100_000},
	}
	s := Summarize(projects, txs)
	if s.TotalRevenue != 800_000 {
		t.Errorf("TotalRevenue = %d", s.TotalRevenue)
	}
	if s.TotalProjects != 4 || s.CompletedProjects != 3 {
		t.Errorf("project counts = %d/%d, want 4/3", s.TotalProjects, s.CompletedProjects)
	}
	if s.ActiveClients != 3 {
		t.Errorf("ActiveClients = %d, want 3", s.ActiveClients)
	}
}

func TestClientPerformanceExcludesClientsWithoutProjects(t *testing.T) {
	clients := []domain.Client{
		{ID: 10, Name: "Dengan Proyek"},
		{ID: 20, Name: "Tanpa Proyek"},
	}
	projects := []domain.Project{{ID: 1, ClientID: 10, Status: domain.ProjectCompleted}}
	rows := ClientPerformance(clients, projects, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Client.ID != 10 {
		t.Errorf("unexpected client in rollup: %d", rows[0].Client.ID)
	}
}

func TestClientPerformanceSortsByRevenueWithStableTies(t *testing.T) {
	clients := []domain.Client{
		{ID: 1, Name: "Kecil"},
		{ID: 2, Name: "Seri A"},
		{ID: 3, Name: "Seri B"},
		{ID: 4, Name: "Besar"},
	}
	projects := []domain.Project{
		{ID: 11, ClientID: 1},
		{ID: 12, ClientID: 2},
		{ID: 13, ClientID: 3},
		{ID: 14, ClientID: 4},
	}
	tx := func(project, amount int64) domain.Transaction {
		p := project
		return domain.Transaction{Type: domain.TransactionIncome, Amount: amount, ProjectID: &p}
	}
	txs := []domain.Transaction{
		tx(11, 100_000),
		tx(12, 500_000),
		tx(13, 500_000),
		tx(14, 2_000_000),
	}
	rows := ClientPerformance(clients, projects, txs)
	gotOrder := []int64{rows[0].Client.ID, rows[1].Client.ID, rows[2].Client.ID, rows[3].Client.ID}
	wantOrder := []int64{4, 2, 3, 1}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("rollup order = %v, want %v", gotOrder, wantOrder)
		}
	}
}

func TestClientPerformanceRowValues(t *testing.T) {
	clients := []domain.Client{{ID: 1, Name: "Klien"}}
	projects := []domain.Project{
		{ID: 11, ClientID: 1, Status: domain.ProjectCompleted},
		{ID: 12, ClientID: 1, Status: "Dalam Proses"},
	}
	p11, p12 := int64(11), int64(12)
	txs := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: 1_200_000, ProjectID: &p11},
		{Type: domain.TransactionIncome, Amount: 800_000, ProjectID: &p12},
		{Type: domain.TransactionExpense, Amount: 400_000, ProjectID: &p11},
	}
	rows := ClientPerformance(clients, projects, txs)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.TotalRevenue != 2_000_000 {
		t.Errorf("revenue = %d", r.TotalRevenue)
	}
	if r.AverageProjectValue != 1_000_000 {
		t.Errorf("average = %d", r.AverageProjectValue)
	}
	if RoundRate(r.CompletionRate) != 50 {
		t.Errorf("completion rate = %v", r.CompletionRate)
	}
}

func TestGroupPostsByDate(t *testing.T) {
	posts := []domain.SocialMediaPost{
		{ID: 1, ScheduledDate: day(2026, time.September, 20)},
		{ID: 2, ScheduledDate: day(2026, time.September, 5)},
		{ID: 3, ScheduledDate: day(2026, time.September, 20)},
	}
	groups := GroupPostsByDate(posts)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	sep20 := groups["2026-09-20"]
	if len(sep20) != 2 || sep20[0].ID != 1 || sep20[1].ID != 3 {
		t.Errorf("group 2026-09-20 wrong or reordered: %v", sep20)
	}
	keys := SortedDateKeys(groups)
	if keys[0] != "2026-09-05" || keys[1] != "2026-09-20" {
		t.Errorf("keys not chronological: %v", keys)
	}
}
