package report

import (
	"reflect"
	"testing"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
)

var testNow = time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	cases := map[string]Period{
		"":      PeriodMonth,
		"month": PeriodMonth,
		"year":  PeriodYear,
		"all":   PeriodAll,
		"ALL":   PeriodAll,
		"bogus": PeriodMonth,
	}
	for in, want := range cases {
		if got := ParsePeriod(in); got != want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilterProjectsByPeriodAllIsIdentity(t *testing.T) {
	projects := []domain.Project{
		{ID: 3, Date: day(2020, time.January, 1)},
		{ID: 1, Date: day(2026, time.September, 1)},
		{ID: 2, Date: day(2024, time.June, 30)},
	}
	got := FilterProjectsByPeriod(projects, PeriodAll, testNow)
	if !reflect.DeepEqual(got, projects) {
		t.Fatalf("period all should return the input unchanged, got %v", got)
	}
}

func TestFilterProjectsByPeriodMonth(t *testing.T) {
	twoMonthsAgo := domain.Project{ID: 1, Date: day(2026, time.July, 1)}
	today := domain.Project{ID: 2, Date: testNow}
	future := domain.Project{ID: 3, Date: day(2026, time.December, 24)}
	firstOfMonth := domain.Project{ID: 4, Date: day(2026, time.September, 1)}

	got := FilterProjectsByPeriod([]domain.Project{twoMonthsAgo, today, future, firstOfMonth}, PeriodMonth, testNow)

	want := []int64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %d projects, want %d", len(got), len(want))
	}
	for i, p := range got {
		if p.ID != want[i] {
			t.Errorf("position %d: got project %d, want %d", i, p.ID, want[i])
		}
	}
}

func TestFilterTransactionsByPeriodYear(t *testing.T) {
	lastYear := domain.Transaction{ID: 1, Date: day(2025, time.December, 31)}
	janFirst := domain.Transaction{ID: 2, Date: day(2026, time.January, 1)}
	got := FilterTransactionsByPeriod([]domain.Transaction{lastYear, janFirst}, PeriodYear, testNow)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("year filter should keep only the January 1 record, got %v", got)
	}
}

func TestFilterProjectsByClient(t *testing.T) {
	projects := []domain.Project{
		{ID: 1, ClientID: 10},
		{ID: 2, ClientID: 20},
		{ID: 3, ClientID: 10},
	}
	if got := FilterProjectsByClient(projects, RelationAll); !reflect.DeepEqual(got, projects) {
		t.Errorf("sentinel client should pass through, got %v", got)
	}
	got := FilterProjectsByClient(projects, 10)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("client 10 filter wrong: %v", got)
	}
}

func TestFilterTransactionsByProjects(t *testing.T) {
	p1, p2 := int64(1), int64(2)
	txs := []domain.Transaction{
		{ID: 1, ProjectID: &p1},
		{ID: 2, ProjectID: nil},
		{ID: 3, ProjectID: &p2},
	}
	got := FilterTransactionsByProjects(txs, []domain.Project{{ID: 1}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only the project-1 transaction, got %v", got)
	}
}

func TestSearchClientsEmptyQueryIsIdentity(t *testing.T) {
	clients := []domain.Client{{ID: 2, Name: "Budi"}, {ID: 1, Name: "Ani"}}
	got := SearchClients(clients, "")
	if !reflect.DeepEqual(got, clients) {
		t.Fatalf("empty query should return the input unchanged in order, got %v", got)
	}
}

func TestSearchClientsMatchesFields(t *testing.T) {
	clients := []domain.Client{
		{ID: 1, Name: "Andi Wijaya", Email: "andi@mail.com", Phone: "0812000"},
		{ID: 2, Name: "Siti", Email: "siti@mail.com", Phone: "0899111"},
	}
	if got := SearchClients(clients, "WIJAYA"); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("name search should be case-insensitive: %v", got)
	}
	if got := SearchClients(clients, "siti@"); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("email search failed: %v", got)
	}
	if got := SearchClients(clients, "0899"); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("phone search failed: %v", got)
	}
}

func TestSearchLeads(t *testing.T) {
	leads := []domain.Lead{
		{ID: 1, Name: "Pasangan Bandung", Location: "Bandung"},
		{ID: 2, Name: "Korporat", Location: "Jakarta"},
	}
	if got := SearchLeads(leads, "jakarta"); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("location search failed: %v", got)
	}
	if got := SearchLeads(leads, ""); len(got) != 2 {
		t.Errorf("empty query should pass through, got %v", got)
	}
}

func TestFilterPosts(t *testing.T) {
	posts := []domain.SocialMediaPost{
		{ID: 1, Status: domain.PostDraft, Platform: "Instagram"},
		{ID: 2, Status: domain.PostScheduled, Platform: "TikTok"},
		{ID: 3, Status: domain.PostScheduled, Platform: "Instagram"},
	}
	if got := FilterPosts(posts, "ALL", "ALL"); len(got) != 3 {
		t.Errorf("ALL/ALL should pass through, got %v", got)
	}
	got := FilterPosts(posts, "scheduled", "Instagram")
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("combined filter wrong: %v", got)
	}
}
