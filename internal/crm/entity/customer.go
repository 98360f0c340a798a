package entity

import "time"

// Customer 客户主档 (rows originate from the dashboard CRUD / spreadsheet import)
type Customer struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	Name        string `json:"name" gorm:"size:200;not null"`
	UsageStatus string `json:"usage_status" gorm:"size:20;default:active;index"` // active/trial/paused/canceled/inactive

	// Contract dates come in as spreadsheet strings (YYYY-MM-DD); a blank or
	// malformed value means "not yet under contract" and is never an error.
	ContractStart string `json:"contract_start" gorm:"size:20"`
	CSOwner       string `json:"cs_owner" gorm:"size:64"`

	Phone     string    `json:"phone" gorm:"size:32"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Branches []CustomerBranch `json:"branches,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string {
	return "crm_customers"
}

// 客户使用状态
const (
	UsageStatusActive   = "active"
	UsageStatusTrial    = "trial"
	UsageStatusPaused   = "paused"
	UsageStatusCanceled = "canceled"
	UsageStatusInactive = "inactive"
)

// CustomerBranch 客户分店。A branch-level contract start overrides the
// customer-level one for that branch only.
type CustomerBranch struct {
	ID         string `json:"id" gorm:"primaryKey;size:32"`
	CustomerID string `json:"customer_id" gorm:"size:32;not null;index"`
	Name       string `json:"name" gorm:"size:200;not null"`

	ContractStart string `json:"contract_start" gorm:"size:20"`
	CSOwner       string `json:"cs_owner" gorm:"size:64"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomerBranch) TableName() string {
	return "crm_customer_branches"
}
