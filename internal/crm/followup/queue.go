package followup

import (
	"sort"
	"strings"

	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/entity"
)

// 队列标签页。Each tab is a separate filter over the same derived pool;
// history bypasses the live queue and reads the raw log instead.
const (
	TabToday    = "today"
	TabOverdue  = "overdue"
	TabUpcoming = "upcoming"
	TabAll      = "all"
	TabHistory  = "history"
)

// PageSize is fixed for both the live queue and history.
const PageSize = 10

// QueueResult is one page of the projected follow-up queue.
type QueueResult struct {
	Items      []Obligation `json:"items"`
	TotalCount int          `json:"total_count"`
	TotalPages int          `json:"total_pages"`
}

// HistoryResult is one page of raw ledger entries, newest first.
type HistoryResult struct {
	Items      []entity.FollowUpLog `json:"items"`
	TotalCount int                  `json:"total_count"`
	TotalPages int                  `json:"total_pages"`
}

// Project filters, sorts and paginates the derived obligations against the
// reconciled ledger. Order is fixed: suppression, search, tab filter, sort,
// pagination. Deterministic for identical inputs.
func Project(obligations []Obligation, ledger *Ledger, tab, search string, page int) QueueResult {
	search = strings.ToLower(strings.TrimSpace(search))

	var pool []Obligation
	for _, o := range obligations {
		if ledger.Completed(o.Identity) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), search) &&
			!strings.Contains(strings.ToLower(o.BranchName), search) {
			continue
		}
		if !inTab(o, tab) {
			continue
		}
		o.Attempts = ledger.Attempts(o.Identity)
		pool = append(pool, o)
	}

	// Soonest elapsed time first. Ties break on the natural key so the
	// same inputs always paginate identically.
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].DaysUsed != pool[j].DaysUsed {
			return pool[i].DaysUsed < pool[j].DaysUsed
		}
		if pool[i].CustomerID != pool[j].CustomerID {
			return pool[i].CustomerID < pool[j].CustomerID
		}
		return pool[i].BranchName < pool[j].BranchName
	})

	total := len(pool)
	items, totalPages := paginate(pool, page)
	return QueueResult{Items: items, TotalCount: total, TotalPages: totalPages}
}

func inTab(o Obligation, tab string) bool {
	switch tab {
	case TabToday:
		return IsMilestone(o.DaysUsed)
	case TabOverdue:
		// Past the current round's milestone but not exactly on one:
		// the same-day set belongs to the today tab alone.
		return o.DaysUsed > o.Round && !IsMilestone(o.DaysUsed)
	case TabUpcoming:
		return o.DaysUsed >= 0 && o.DaysUsed < FirstMilestone
	default: // TabAll or empty
		return true
	}
}

// HistoryPage pages the raw outcome log, newest first, independent of
// suppression and bucketing. Blank legacy outcomes are surfaced as completed
// (read-side shim; stored rows are untouched).
func HistoryPage(logs []entity.FollowUpLog, page int) HistoryResult {
	sorted := make([]entity.FollowUpLog, len(logs))
	copy(sorted, logs)

	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CompletedAt.Equal(sorted[j].CompletedAt) {
			return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})

	for i := range sorted {
		sorted[i].Outcome = EffectiveOutcome(sorted[i].Outcome)
	}

	total := len(sorted)
	items, totalPages := paginate(sorted, page)
	return HistoryResult{Items: items, TotalCount: total, TotalPages: totalPages}
}

func paginate[T any](items []T, page int) ([]T, int) {
	if page < 1 {
		page = 1
	}
	totalPages := (len(items) + PageSize - 1) / PageSize

	offset := (page - 1) * PageSize
	if offset >= len(items) {
		return []T{}, totalPages
	}
	end := offset + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], totalPages
}
