package service

import (
	"context"

	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/entity"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/repository"
)

// CustomerService 客户查询服务。Read-only: customer rows are written by the
// dashboard CRUD and spreadsheet import, which live outside this module.
type CustomerService struct {
	customerRepo *repository.CustomerRepository
}

func NewCustomerService(customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// ListCustomers 客户列表（分页+搜索）
func (s *CustomerService) ListCustomers(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Customer, int64, error) {
	return s.customerRepo.FindAll(ctx, page, pageSize, filters)
}

// GetCustomer 客户详情
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}
