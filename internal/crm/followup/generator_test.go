package followup

import (
	"reflect"
	"testing"
	"time"

	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/entity"
)

func dateStr(t time.Time) string {
	return t.Format("2006-01-02")
}

func singleBranchCustomer(id, name, status, contractStart, owner string) entity.Customer {
	return entity.Customer{
		ID:            id,
		Name:          name,
		UsageStatus:   status,
		ContractStart: contractStart,
		CSOwner:       owner,
	}
}

func TestGenerateRoundAndStatus(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		daysAgo    int
		wantRound  int
		wantStatus string
	}{
		{"future contract", -3, 7, StatusPending},
		{"day 0", 0, 7, StatusPending},
		{"day 5", 5, 7, StatusPending},
		{"day 7 exact", 7, 7, StatusCalling},
		{"day 10 past first milestone", 10, 7, StatusOverdue},
		{"day 14 exact", 14, 14, StatusCalling},
		{"day 19", 19, 14, StatusOverdue},
		{"day 29 just before 30", 29, 14, StatusOverdue},
		{"day 30 exact", 30, 30, StatusCalling},
		{"day 90 exact", 90, 90, StatusCalling},
		{"day 100 past last milestone", 100, 90, StatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := now.AddDate(0, 0, -tt.daysAgo)
			customers := []entity.Customer{
				singleBranchCustomer("c1", "Acme", entity.UsageStatusActive, dateStr(start), "owner-a"),
			}

			obs := Generate(customers, now)
			if len(obs) != 1 {
				t.Fatalf("expected 1 obligation, got %d", len(obs))
			}

			o := obs[0]
			if o.Round != tt.wantRound {
				t.Errorf("round = %d, want %d", o.Round, tt.wantRound)
			}
			if o.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", o.Status, tt.wantStatus)
			}
			if o.DaysUsed != tt.daysAgo {
				t.Errorf("daysUsed = %d, want %d", o.DaysUsed, tt.daysAgo)
			}
			wantDue := start.AddDate(0, 0, tt.wantRound)
			if !o.DueDate.Equal(wantDue) {
				t.Errorf("dueDate = %v, want %v", o.DueDate, wantDue)
			}
		})
	}
}

// Contract signed 2024-01-01, refreshed on 2024-01-08 mid-morning: day 7,
// the call is due today.
func TestGenerateScenarioJan08(t *testing.T) {
	now := time.Date(2024, 1, 8, 10, 30, 0, 0, time.Local)
	customers := []entity.Customer{
		singleBranchCustomer("c1", "Acme", entity.UsageStatusActive, "2024-01-01", ""),
	}

	obs := Generate(customers, now)
	if len(obs) != 1 {
		t.Fatalf("expected 1 obligation, got %d", len(obs))
	}
	if obs[0].Round != 7 || obs[0].Status != StatusCalling {
		t.Fatalf("got round=%d status=%s, want round=7 status=calling", obs[0].Round, obs[0].Status)
	}
	if dateStr(obs[0].DueDate) != "2024-01-08" {
		t.Fatalf("dueDate = %s, want 2024-01-08", dateStr(obs[0].DueDate))
	}
}

// Same contract refreshed on 2024-01-20: day 19, round 14 already missed.
func TestGenerateScenarioJan20(t *testing.T) {
	now := time.Date(2024, 1, 20, 10, 30, 0, 0, time.Local)
	customers := []entity.Customer{
		singleBranchCustomer("c1", "Acme", entity.UsageStatusActive, "2024-01-01", ""),
	}

	obs := Generate(customers, now)
	if len(obs) != 1 {
		t.Fatalf("expected 1 obligation, got %d", len(obs))
	}
	if obs[0].Round != 14 || obs[0].Status != StatusOverdue {
		t.Fatalf("got round=%d status=%s, want round=14 status=overdue", obs[0].Round, obs[0].Status)
	}
	if obs[0].DaysUsed != 19 {
		t.Fatalf("daysUsed = %d, want 19", obs[0].DaysUsed)
	}
}

func TestGenerateSkipsCanceledAndInactive(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	start := dateStr(now.AddDate(0, 0, -10))

	customers := []entity.Customer{
		singleBranchCustomer("c1", "Canceled Co", entity.UsageStatusCanceled, start, ""),
		singleBranchCustomer("c2", "Inactive Co", entity.UsageStatusInactive, start, ""),
		singleBranchCustomer("c3", "Active Co", entity.UsageStatusActive, start, ""),
		singleBranchCustomer("c4", "Trial Co", entity.UsageStatusTrial, start, ""),
	}

	obs := Generate(customers, now)
	if len(obs) != 2 {
		t.Fatalf("expected 2 obligations, got %d", len(obs))
	}
	for _, o := range obs {
		if o.CustomerID == "c1" || o.CustomerID == "c2" {
			t.Errorf("customer %s should not generate obligations", o.CustomerID)
		}
	}
}

func TestGenerateVirtualHeadOffice(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	c := singleBranchCustomer("c1", "Acme", entity.UsageStatusActive, dateStr(now.AddDate(0, 0, -7)), "owner-a")

	obs := Generate([]entity.Customer{c}, now)
	if len(obs) != 1 {
		t.Fatalf("expected 1 obligation, got %d", len(obs))
	}
	if obs[0].BranchName != HeadOfficeBranch {
		t.Errorf("branch = %q, want %q", obs[0].BranchName, HeadOfficeBranch)
	}
	if obs[0].CSOwner != "owner-a" {
		t.Errorf("csOwner = %q, want inherited owner-a", obs[0].CSOwner)
	}
}

func TestGenerateBranchContractOverride(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	customerStart := now.AddDate(0, 0, -7)
	branchStart := now.AddDate(0, 0, -19)

	c := entity.Customer{
		ID:            "c1",
		Name:          "Acme",
		UsageStatus:   entity.UsageStatusActive,
		ContractStart: dateStr(customerStart),
		CSOwner:       "owner-a",
		Branches: []entity.CustomerBranch{
			{CustomerID: "c1", Name: "downtown", ContractStart: dateStr(branchStart), CSOwner: "owner-b"},
			{CustomerID: "c1", Name: "uptown"},
		},
	}

	obs := Generate([]entity.Customer{c}, now)
	if len(obs) != 2 {
		t.Fatalf("expected 2 obligations, got %d", len(obs))
	}

	byBranch := map[string]Obligation{}
	for _, o := range obs {
		byBranch[o.BranchName] = o
	}

	downtown := byBranch["downtown"]
	if downtown.Round != 14 || downtown.Status != StatusOverdue {
		t.Errorf("downtown: got round=%d status=%s, want branch-level date to win (14/overdue)", downtown.Round, downtown.Status)
	}
	if downtown.CSOwner != "owner-b" {
		t.Errorf("downtown csOwner = %q, want owner-b", downtown.CSOwner)
	}

	uptown := byBranch["uptown"]
	if uptown.Round != 7 || uptown.Status != StatusCalling {
		t.Errorf("uptown: got round=%d status=%s, want customer-level date (7/calling)", uptown.Round, uptown.Status)
	}
	if uptown.CSOwner != "owner-a" {
		t.Errorf("uptown csOwner = %q, want inherited owner-a", uptown.CSOwner)
	}
}

func TestGenerateSkipsUnparseableDates(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)

	c := entity.Customer{
		ID:          "c1",
		Name:        "Acme",
		UsageStatus: entity.UsageStatusActive,
		Branches: []entity.CustomerBranch{
			{CustomerID: "c1", Name: "good", ContractStart: dateStr(now.AddDate(0, 0, -10))},
			{CustomerID: "c1", Name: "bad", ContractStart: "20/02/2024"},
			{CustomerID: "c1", Name: "blank"},
		},
	}
	noDate := singleBranchCustomer("c2", "No Contract", entity.UsageStatusActive, "", "")

	obs := Generate([]entity.Customer{c, noDate}, now)
	if len(obs) != 1 {
		t.Fatalf("expected only the parseable pair, got %d obligations", len(obs))
	}
	if obs[0].BranchName != "good" {
		t.Fatalf("branch = %q, want good", obs[0].BranchName)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	customers := []entity.Customer{
		singleBranchCustomer("c1", "Acme", entity.UsageStatusActive, dateStr(now.AddDate(0, 0, -7)), "a"),
		singleBranchCustomer("c2", "Beta", entity.UsageStatusActive, dateStr(now.AddDate(0, 0, -19)), "b"),
	}

	first := Generate(customers, now)
	second := Generate(customers, now)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different obligation sets")
	}
}

func TestCurrentRound(t *testing.T) {
	tests := []struct {
		daysUsed int
		want     int
	}{
		{-5, 7}, {0, 7}, {6, 7}, {7, 7}, {13, 7},
		{14, 14}, {29, 14}, {30, 30}, {59, 30},
		{60, 60}, {89, 60}, {90, 90}, {365, 90},
	}
	for _, tt := range tests {
		if got := CurrentRound(tt.daysUsed); got != tt.want {
			t.Errorf("CurrentRound(%d) = %d, want %d", tt.daysUsed, got, tt.want)
		}
	}
}
