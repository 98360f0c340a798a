package followup

import (
	"fmt"
	"testing"
	"time"

	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/entity"
)

func obligation(customerID, customerName, branch string, round, daysUsed int) Obligation {
	return Obligation{
		Identity:     Identity{CustomerID: customerID, BranchName: branch, Round: round},
		CustomerID:   customerID,
		CustomerName: customerName,
		BranchName:   branch,
		Round:        round,
		DaysUsed:     daysUsed,
	}
}

func emptyLedger() *Ledger {
	return Reconcile(nil)
}

func TestProjectSuppressesCompleted(t *testing.T) {
	obs := []Obligation{
		obligation("c1", "Acme", "head office", 7, 7),
		obligation("c2", "Beta", "head office", 7, 7),
	}
	logs := []entity.FollowUpLog{logEntry("c1", "head office", 7, entity.OutcomeCompleted)}
	ledger := Reconcile(logs)

	res := Project(obs, ledger, TabAll, "", 1)
	if res.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1", res.TotalCount)
	}
	if res.Items[0].CustomerID != "c2" {
		t.Errorf("remaining item = %s, want c2", res.Items[0].CustomerID)
	}

	// History is unaffected by suppression.
	hist := HistoryPage(logs, 1)
	if hist.TotalCount != 1 {
		t.Errorf("history TotalCount = %d, want 1", hist.TotalCount)
	}
}

func TestProjectSearch(t *testing.T) {
	obs := []Obligation{
		obligation("c1", "Acme Coffee", "head office", 7, 7),
		obligation("c2", "Beta Bakery", "Riverside", 7, 7),
		obligation("c3", "Gamma Gym", "head office", 7, 7),
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"acme", []string{"c1"}},
		{"RIVERSIDE", []string{"c2"}},
		{"  beta  ", []string{"c2"}},
		{"head office", []string{"c1", "c3"}},
		{"", []string{"c1", "c2", "c3"}},
		{"nomatch", nil},
	}

	for _, tt := range tests {
		res := Project(obs, emptyLedger(), TabAll, tt.search, 1)
		var got []string
		for _, o := range res.Items {
			got = append(got, o.CustomerID)
		}
		if len(got) != len(tt.want) {
			t.Errorf("search %q: got %v, want %v", tt.search, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("search %q: got %v, want %v", tt.search, got, tt.want)
				break
			}
		}
	}
}

func TestProjectTabs(t *testing.T) {
	obs := []Obligation{
		obligation("c1", "On Milestone", "b", 7, 7),       // today
		obligation("c2", "Past Milestone", "b", 7, 10),    // overdue
		obligation("c3", "Fresh", "b", 7, 3),              // upcoming
		obligation("c4", "Future", "b", 7, -2),            // neither (future contract)
		obligation("c5", "Later Milestone", "b", 30, 30),  // today
		obligation("c6", "Long Overdue", "b", 90, 120),    // overdue
	}

	tests := []struct {
		tab  string
		want map[string]bool
	}{
		{TabToday, map[string]bool{"c1": true, "c5": true}},
		{TabOverdue, map[string]bool{"c2": true, "c6": true}},
		{TabUpcoming, map[string]bool{"c3": true}},
		{TabAll, map[string]bool{"c1": true, "c2": true, "c3": true, "c4": true, "c5": true, "c6": true}},
	}

	for _, tt := range tests {
		res := Project(obs, emptyLedger(), tt.tab, "", 1)
		if res.TotalCount != len(tt.want) {
			t.Errorf("tab %s: TotalCount = %d, want %d", tt.tab, res.TotalCount, len(tt.want))
		}
		for _, o := range res.Items {
			if !tt.want[o.CustomerID] {
				t.Errorf("tab %s: unexpected item %s", tt.tab, o.CustomerID)
			}
		}
	}
}

func TestProjectSortAndTieBreak(t *testing.T) {
	obs := []Obligation{
		obligation("c3", "C", "b", 14, 20),
		obligation("c1", "A", "beta branch", 7, 10),
		obligation("c2", "B", "b", 7, 10),
		obligation("c1", "A", "alpha branch", 7, 10),
	}

	res := Project(obs, emptyLedger(), TabAll, "", 1)

	wantOrder := []struct{ customerID, branch string }{
		{"c1", "alpha branch"},
		{"c1", "beta branch"},
		{"c2", "b"},
		{"c3", "b"},
	}
	if len(res.Items) != len(wantOrder) {
		t.Fatalf("got %d items, want %d", len(res.Items), len(wantOrder))
	}
	for i, w := range wantOrder {
		if res.Items[i].CustomerID != w.customerID || res.Items[i].BranchName != w.branch {
			t.Errorf("position %d: got %s/%s, want %s/%s",
				i, res.Items[i].CustomerID, res.Items[i].BranchName, w.customerID, w.branch)
		}
	}
}

func TestProjectPagination(t *testing.T) {
	var obs []Obligation
	for i := 0; i < 25; i++ {
		obs = append(obs, obligation(fmt.Sprintf("c%02d", i), "Customer", "b", 7, i))
	}

	tests := []struct {
		page      int
		wantLen   int
		wantPages int
	}{
		{1, 10, 3},
		{2, 10, 3},
		{3, 5, 3},
		{4, 0, 3},
		{99, 0, 3},
		{0, 10, 3}, // clamped to page 1
	}

	for _, tt := range tests {
		res := Project(obs, emptyLedger(), TabAll, "", tt.page)
		if len(res.Items) != tt.wantLen {
			t.Errorf("page %d: len = %d, want %d", tt.page, len(res.Items), tt.wantLen)
		}
		if res.TotalPages != tt.wantPages {
			t.Errorf("page %d: TotalPages = %d, want %d", tt.page, res.TotalPages, tt.wantPages)
		}
		if res.TotalCount != 25 {
			t.Errorf("page %d: TotalCount = %d, want 25", tt.page, res.TotalCount)
		}
	}
}

func TestProjectAttemptsFromLedger(t *testing.T) {
	obs := []Obligation{
		obligation("c1", "Acme", "head office", 7, 10),
	}
	ledger := Reconcile([]entity.FollowUpLog{
		logEntry("c1", "head office", 7, entity.OutcomeNoAnswer),
		logEntry("c1", "head office", 7, entity.OutcomeCallbackLater),
	})

	res := Project(obs, ledger, TabAll, "", 1)
	if len(res.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(res.Items))
	}
	if res.Items[0].Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", res.Items[0].Attempts)
	}
}

func TestHistoryPageNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

	a := logEntry("c1", "head office", 7, entity.OutcomeNoAnswer)
	a.ID = "a"
	a.CompletedAt = base
	b := logEntry("c1", "head office", 7, entity.OutcomeCompleted)
	b.ID = "b"
	b.CompletedAt = base.Add(2 * time.Hour)
	legacy := logEntry("c2", "head office", 14, "")
	legacy.ID = "c"
	legacy.CompletedAt = base.Add(time.Hour)
	logs := []entity.FollowUpLog{a, b, legacy}

	res := HistoryPage(logs, 1)
	if res.TotalCount != 3 {
		t.Fatalf("TotalCount = %d, want 3", res.TotalCount)
	}

	wantIDs := []string{"b", "c", "a"}
	for i, want := range wantIDs {
		if res.Items[i].ID != want {
			t.Errorf("position %d: ID = %s, want %s", i, res.Items[i].ID, want)
		}
	}

	// Legacy blank outcome surfaces as completed.
	if res.Items[1].Outcome != "completed" {
		t.Errorf("legacy outcome = %q, want completed", res.Items[1].Outcome)
	}

	// Input slice must not be reordered.
	if logs[0].ID != "a" {
		t.Error("HistoryPage mutated its input slice order")
	}
}
