package followup

import (
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/entity"
)

// Ledger is the reconciled view of the append-only outcome log: which
// identities are done for good, and how many unresolved attempts each has.
type Ledger struct {
	completed map[Identity]struct{}
	attempts  map[Identity]int
}

// Reconcile rebuilds the ledger view from the full log snapshot. Always built
// from scratch — incremental patching of a long-lived set drifts from the
// authoritative log once a second writer appends concurrently.
func Reconcile(logs []entity.FollowUpLog) *Ledger {
	l := &Ledger{
		completed: make(map[Identity]struct{}, len(logs)),
		attempts:  make(map[Identity]int),
	}

	for _, entry := range logs {
		id := Identity{
			CustomerID: entry.CustomerID,
			BranchName: entry.BranchName,
			Round:      entry.Round,
		}
		if EffectiveOutcome(entry.Outcome) == entity.OutcomeCompleted {
			// Set union: a second completed entry for the same identity
			// is harmless, never contradictory.
			l.completed[id] = struct{}{}
		} else {
			l.attempts[id]++
		}
	}

	return l
}

// Completed reports whether at least one completed entry exists for id.
func (l *Ledger) Completed(id Identity) bool {
	_, ok := l.completed[id]
	return ok
}

// Attempts returns the count of non-completed entries for id. Never capped,
// never decremented.
func (l *Ledger) Attempts(id Identity) int {
	return l.attempts[id]
}

// CompletedCount returns the number of distinct completed identities.
func (l *Ledger) CompletedCount() int {
	return len(l.completed)
}

// EffectiveOutcome maps a stored outcome to its reconciliation meaning.
// Rows written before the three-way outcome split have no outcome column
// value; they are read as completed. Compat shim only — the stored rows are
// never rewritten.
func EffectiveOutcome(outcome string) string {
	if outcome == "" {
		return entity.OutcomeCompleted
	}
	return outcome
}
