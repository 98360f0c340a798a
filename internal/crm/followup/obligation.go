package followup

import "time"

// Identity uniquely keys an obligation and every log entry about it.
// The composite key is used directly (comparable struct, valid map key);
// there is no derived numeric id.
type Identity struct {
	CustomerID string `json:"customer_id"`
	BranchName string `json:"branch_name"`
	Round      int    `json:"round"`
}

// 回访任务状态
const (
	StatusPending = "pending" // not yet reached the round's milestone
	StatusCalling = "calling" // milestone day is today
	StatusOverdue = "overdue" // milestone day has passed without completion
)

// HeadOfficeBranch is the virtual branch substituted for customers that have
// no branch rows; it inherits the customer-level contract start and CS owner.
const HeadOfficeBranch = "head office"

// Obligation 单个客户×分店的待回访任务。Derived on every refresh from
// (customers, now) and never persisted — completion lives in the log, and time
// passing simply moves the pair into the next round (a new identity).
type Obligation struct {
	Identity Identity `json:"identity"`

	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	BranchName   string `json:"branch_name"`
	Round        int    `json:"round"`
	CSOwner      string `json:"cs_owner"`

	ContractStart time.Time `json:"contract_start"`
	DueDate       time.Time `json:"due_date"`

	// DaysUsed is negative for contracts starting in the future; callers
	// surface that as a "not yet" countdown rather than an error.
	DaysUsed int    `json:"days_used"`
	Status   string `json:"status"`

	// Attempts is filled in by the queue projector from the reconciled
	// ledger: the number of logged outcomes other than completed.
	Attempts int `json:"attempts"`
}
