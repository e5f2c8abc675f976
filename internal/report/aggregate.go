package report

import (
	"math"
	"sort"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
)

// Summary holds the headline numbers for a filtered report window.
type Summary struct {
	TotalRevenue      int64
	TotalProjects     int
	CompletedProjects int
	ActiveClients     int
}

// ClientRow is one entry of the per-client performance rollup.
type ClientRow struct {
	Client              domain.Client
	TotalRevenue        int64
	TotalProjects       int
	CompletedProjects   int
	AverageProjectValue int64
	CompletionRate      float64
}

// TotalRevenue sums income transactions. Expenses are ignored. The result
// does not depend on input order.
func TotalRevenue(txs []domain.Transaction) int64 {
	var sum int64
	for _, t := range txs {
		if t.Type == domain.TransactionIncome {
			sum += t.Amount
		}
	}
	return sum
}

// CompletionRate is completed/total as a percentage. Zero projects means
// zero percent, never a division by zero.
func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// RoundRate rounds a completion rate to the nearest integer for display.
func RoundRate(rate float64) int {
	return int(math.Round(rate))
}

// CountCompleted counts projects whose status marks them finished.
func CountCompleted(projects []domain.Project) int {
	n := 0
	for _, p := range projects {
		if p.Status == domain.ProjectCompleted {
			n++
		}
	}
	return n
}

// Summarize computes the headline numbers over already-filtered collections.
// ActiveClients is the number of distinct clients referenced by the projects.
func Summarize(projects []domain.Project, txs []domain.Transaction) Summary {
	clients := make(map[int64]struct{}, len(projects))
	for _, p := range projects {
		clients[p.ClientID] = struct{}{}
	}
	return Summary{
		TotalRevenue:      TotalRevenue(txs),
		TotalProjects:     len(projects),
		CompletedProjects: CountCompleted(projects),
		ActiveClients:     len(clients),
	}
}

// AverageProjectValue is revenue per project, zero when there are no projects.
func AverageProjectValue(totalRevenue int64, totalProjects int) int64 {
	if totalProjects == 0 {
		return 0
	}
	return totalRevenue / int64(totalProjects)
}

// ClientPerformance builds the per-client rollup: for every client, the
// subset of filtered projects and their income transactions reduced to
// revenue, counts and rates. Clients with no matching projects are dropped.
// Rows are ordered by revenue descending; ties keep the clients' original
// order (sort is stable).
func ClientPerformance(clients []domain.Client, projects []domain.Project, txs []domain.Transaction) []ClientRow {
	rows := make([]ClientRow, 0, len(clients))
	for _, c := range clients {
		clientProjects := FilterProjectsByClient(projects, c.ID)
		if len(clientProjects) == 0 {
			continue
		}
		clientTxs := FilterTransactionsByProjects(txs, clientProjects)
		revenue := TotalRevenue(clientTxs)
		completed := CountCompleted(clientProjects)
		rows = append(rows, ClientRow{
			Client:              c,
			TotalRevenue:        revenue,
			TotalProjects:       len(clientProjects),
			CompletedProjects:   completed,
			AverageProjectValue: AverageProjectValue(revenue, len(clientProjects)),
			CompletionRate:      CompletionRate(completed, len(clientProjects)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue > rows[j].TotalRevenue
	})
	return rows
}

// GroupPostsByDate partitions posts into a map keyed by the scheduled date
// string (YYYY-MM-DD, exactly as stored). Records keep their original order
// within each group.
func GroupPostsByDate(posts []domain.SocialMediaPost) map[string][]domain.SocialMediaPost {
	groups := make(map[string][]domain.SocialMediaPost)
	for _, p := range posts {
		key := p.ScheduledDate.Format("2006-01-02")
		groups[key] = append(groups[key], p)
	}
	return groups
}

// SortedDateKeys returns the group keys in ascending chronological order.
// Date-layout keys compare correctly as strings.
func SortedDateKeys(groups map[string][]domain.SocialMediaPost) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
