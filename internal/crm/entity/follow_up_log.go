package entity

import "time"

// FollowUpLog 回访结果流水。Append-only: rows are created once by the outcome
// recorder and never updated or deleted; all "is this done" state is derived by
// re-reading the full log, never by mutating it.
type FollowUpLog struct {
	ID         string `json:"id" gorm:"primaryKey;size:32"`
	CustomerID string `json:"customer_id" gorm:"size:32;not null;index:idx_follow_up_identity,priority:1"`
	BranchName string `json:"branch_name" gorm:"size:200;not null;index:idx_follow_up_identity,priority:2"`
	Round      int    `json:"round" gorm:"not null;index:idx_follow_up_identity,priority:3"`

	CSOwner     string    `json:"cs_owner" gorm:"size:64"`
	DueDate     time.Time `json:"due_date"`
	CompletedAt time.Time `json:"completed_at" gorm:"index"`
	Feedback    string    `json:"feedback" gorm:"type:text"`

	// Empty on rows that predate the three-way outcome split; readers treat
	// blank as completed (compat shim, see followup.Reconcile).
	Outcome string `json:"outcome" gorm:"size:20"`

	CreatedAt time.Time `json:"created_at"`
}

func (FollowUpLog) TableName() string {
	return "crm_follow_up_logs"
}

// 回访结果
const (
	OutcomeCompleted     = "completed"
	OutcomeNoAnswer      = "no_answer"
	OutcomeCallbackLater = "callback_later"
)

// ValidOutcomes 可记录的回访结果集合
var ValidOutcomes = map[string]bool{
	OutcomeCompleted:     true,
	OutcomeNoAnswer:      true,
	OutcomeCallbackLater: true,
}
