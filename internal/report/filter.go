// Package report implements the in-memory reporting pipeline: pure filter
// functions over loaded entity collections, aggregation into summary
// statistics, and display formatting. None of these functions mutate their
// inputs; handlers load collections from the repositories and pipe them
// through here.
package report

import (
	"strings"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
)

// Period selects the reporting time window.
type Period string

const (
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// ParsePeriod maps a query value onto a Period, defaulting to month.
func ParsePeriod(s string) Period {
	switch Period(strings.ToLower(s)) {
	case PeriodYear:
		return PeriodYear
	case PeriodAll:
		return PeriodAll
	case PeriodMonth:
		return PeriodMonth
	case "":
		return PeriodMonth
	}
	return PeriodMonth
}

// PeriodStart returns the lower bound for a period relative to now.
// The zero time means no bound. There is never an upper bound; future-dated
// records always pass.
func PeriodStart(p Period, now time.Time) time.Time {
	switch p {
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return time.Time{}
}

// FilterProjectsByPeriod keeps projects dated on or after the period start.
func FilterProjectsByPeriod(projects []domain.Project, p Period, now time.Time) []domain.Project {
	start := PeriodStart(p, now)
	if start.IsZero() {
		return projects
	}
	out := make([]domain.Project, 0, len(projects))
	for _, pr := range projects {
		if !pr.Date.Before(start) {
			out = append(out, pr)
		}
	}
	return out
}

// FilterTransactionsByPeriod keeps transactions dated on or after the period start.
func FilterTransactionsByPeriod(txs []domain.Transaction, p Period, now time.Time) []domain.Transaction {
	start := PeriodStart(p, now)
	if start.IsZero() {
		return txs
	}
	out := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if !t.Date.Before(start) {
			out = append(out, t)
		}
	}
	return out
}

// RelationAll is the pass-through sentinel for relation filters.
const RelationAll int64 = 0

// FilterProjectsByClient keeps projects belonging to clientID.
// RelationAll passes everything through untouched.
func FilterProjectsByClient(projects []domain.Project, clientID int64) []domain.Project {
	if clientID == RelationAll {
		return projects
	}
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// FilterTransactionsByProjects keeps transactions attached to any of the given
// projects. Transactions without a project reference are dropped.
func FilterTransactionsByProjects(txs []domain.Transaction, projects []domain.Project) []domain.Transaction {
	ids := make(map[int64]struct{}, len(projects))
	for _, p := range projects {
		ids[p.ID] = struct{}{}
	}
	out := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.ProjectID == nil {
			continue
		}
		if _, ok := ids[*t.ProjectID]; ok {
			out = append(out, t)
		}
	}
	return out
}

// SearchClients keeps clients whose name, email or phone contains the query.
// Matching is case-insensitive; an empty query is a pass-through.
func SearchClients(clients []domain.Client, query string) []domain.Client {
	if query == "" {
		return clients
	}
	q := strings.ToLower(query)
	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out
}

// SearchLeads keeps leads whose name or location contains the query.
func SearchLeads(leads []domain.Lead, query string) []domain.Lead {
	if query == "" {
		return leads
	}
	q := strings.ToLower(query)
	out := make([]domain.Lead, 0, len(leads))
	for _, l := range leads {
		if strings.Contains(strings.ToLower(l.Name), q) ||
			strings.Contains(strings.ToLower(l.Location), q) {
			out = append(out, l)
		}
	}
	return out
}

// FilterPosts narrows social posts by status and platform. The sentinel
// "ALL" (any case) passes a dimension through.
func FilterPosts(posts []domain.SocialMediaPost, status, platform string) []domain.SocialMediaPost {
	statusAll := status == "" || strings.EqualFold(status, "ALL")
	platformAll := platform == "" || strings.EqualFold(platform, "ALL")
	if statusAll && platformAll {
		return posts
	}
	out := make([]domain.SocialMediaPost, 0, len(posts))
	for _, p := range posts {
		if !statusAll && string(p.Status) != status {
			continue
		}
		if !platformAll && p.Platform != platform {
			continue
		}
		out = append(out, p)
	}
	return out
}
