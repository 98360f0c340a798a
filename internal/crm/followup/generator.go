package followup

import (
	"math"
	"strings"
	"time"

	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/entity"
)

// contractDateLayout matches the spreadsheet-imported contract_start columns.
const contractDateLayout = "2006-01-02"

// Generate derives the full obligation set for one snapshot in time.
//
// Recomputed from scratch on every call: the active queue is cheap to derive
// and must always reflect the `now` passed in, never a cached decision from an
// earlier run. Identical (customers, now) inputs yield identical output.
func Generate(customers []entity.Customer, now time.Time) []Obligation {
	var obligations []Obligation

	for _, c := range customers {
		if c.UsageStatus == entity.UsageStatusCanceled || c.UsageStatus == entity.UsageStatusInactive {
			continue
		}

		branches := c.Branches
		if len(branches) == 0 {
			// Customers without branch rows are treated as a single
			// head-office branch inheriting the customer-level fields.
			branches = []entity.CustomerBranch{{
				CustomerID:    c.ID,
				Name:          HeadOfficeBranch,
				ContractStart: c.ContractStart,
				CSOwner:       c.CSOwner,
			}}
		}

		for _, b := range branches {
			if ob, ok := deriveObligation(c, b, now); ok {
				obligations = append(obligations, ob)
			}
		}
	}

	return obligations
}

func deriveObligation(c entity.Customer, b entity.CustomerBranch, now time.Time) (Obligation, bool) {
	// Branch-level contract start overrides the customer's for this branch.
	raw := strings.TrimSpace(b.ContractStart)
	if raw == "" {
		raw = strings.TrimSpace(c.ContractStart)
	}
	if raw == "" {
		return Obligation{}, false
	}

	start, err := time.ParseInLocation(contractDateLayout, raw, now.Location())
	if err != nil {
		// Blank or malformed dates mean "not yet under contract": the
		// pair is skipped silently, not reported.
		return Obligation{}, false
	}

	daysUsed := int(math.Floor(now.Sub(start).Hours() / 24))
	round := CurrentRound(daysUsed)

	status := StatusPending
	switch {
	case daysUsed > round:
		status = StatusOverdue
	case daysUsed == round:
		status = StatusCalling
	}

	csOwner := b.CSOwner
	if csOwner == "" {
		csOwner = c.CSOwner
	}

	return Obligation{
		Identity: Identity{
			CustomerID: c.ID,
			BranchName: b.Name,
			Round:      round,
		},
		CustomerID:    c.ID,
		CustomerName:  c.Name,
		BranchName:    b.Name,
		Round:         round,
		CSOwner:       csOwner,
		ContractStart: start,
		DueDate:       start.AddDate(0, 0, round),
		DaysUsed:      daysUsed,
		Status:        status,
	}, true
}
