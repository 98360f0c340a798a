package repository

import (
	"context"

	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/entity"
	"gorm.io/gorm"
)

// FollowUpLogRepository 回访流水仓库。Append-only: no Update/Delete methods
// exist on purpose.
type FollowUpLogRepository struct {
	db *gorm.DB
}

func NewFollowUpLogRepository(db *gorm.DB) *FollowUpLogRepository {
	return &FollowUpLogRepository{db: db}
}

// ListAll returns the full log snapshot, newest first. The reconciler is
// order-independent; history paging re-sorts defensively either way.
func (r *FollowUpLogRepository) ListAll(ctx context.Context) ([]entity.FollowUpLog, error) {
	var logs []entity.FollowUpLog
	err := r.db.WithContext(ctx).
		Order("completed_at DESC").
		Find(&logs).Error
	return logs, err
}

// ListByIdentity returns all entries for one obligation identity.
func (r *FollowUpLogRepository) ListByIdentity(ctx context.Context, customerID, branchName string, round int) ([]entity.FollowUpLog, error) {
	var logs []entity.FollowUpLog
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND branch_name = ? AND round = ?", customerID, branchName, round).
		Order("completed_at DESC").
		Find(&logs).Error
	return logs, err
}

// Append writes one immutable log entry. Single-row insert: it succeeds or
// fails atomically, there is no partial state.
func (r *FollowUpLogRepository) Append(ctx context.Context, log *entity.FollowUpLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
