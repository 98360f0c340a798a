package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/config"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/repository"
	"github.com/redis/go-redis/v9"
)

// Services CRM服务集合
type Services struct {
	Customer *CustomerService
	FollowUp *FollowUpService
	Export   *ExportService
}

// NewServices 创建CRM服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, mc *minio.Client, cfg *config.Config) *Services {
	return &Services{
		Customer: NewCustomerService(repos.Customer),
		FollowUp: NewFollowUpService(repos.Customer, repos.FollowUpLog, rdb),
		Export:   NewExportService(repos.FollowUpLog, mc, cfg),
	}
}
