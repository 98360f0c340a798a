package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories CRM仓库集合
type Repositories struct {
	Customer    *CustomerRepository
	FollowUpLog *FollowUpLogRepository
}

// NewRepositories 创建CRM仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer:    NewCustomerRepository(db),
		FollowUpLog: NewFollowUpLogRepository(db),
	}
}
