package repository

import (
	"context"
	"errors"

	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/entity"
	"gorm.io/gorm"
)

// CustomerRepository 客户仓库
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// ListActiveWithBranches returns the generation snapshot: every customer not
// canceled/inactive, branches preloaded. No server-side date filtering — the
// engine decides which pairs produce obligations.
func (r *CustomerRepository) ListActiveWithBranches(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).
		Preload("Branches", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Where("usage_status NOT IN ?", []string{entity.UsageStatusCanceled, entity.UsageStatusInactive}).
		Order("created_at ASC").
		Find(&customers).Error
	return customers, err
}

// FindAll 查询客户列表（分页+搜索）
func (r *CustomerRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Customer, int64, error) {
	var items []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if status := filters["usage_status"]; status != "" {
		query = query.Where("usage_status = ?", status)
	}
	if owner := filters["cs_owner"]; owner != "" {
		query = query.Where("cs_owner = ?", owner)
	}
	if search := filters["search"]; search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Branches").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindByID 根据ID查找客户（含分店）
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).
		Preload("Branches").
		Where("id = ?", id).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}
