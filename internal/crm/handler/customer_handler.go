package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/service"
)

// CustomerHandler 客户查询处理器
type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// ListCustomers 客户列表
// GET /api/v1/customers?usage_status=xxx&cs_owner=xxx&search=xxx
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"usage_status": c.Query("usage_status"),
		"cs_owner":     c.Query("cs_owner"),
		"search":       c.Query("search"),
	}

	items, total, err := h.svc.ListCustomers(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "list customers failed: "+err.Error())
		return
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	Success(c, ListResponse{
		Items: items,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      int(total),
			TotalPages: totalPages,
		},
	})
}

// GetCustomer 客户详情
// GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id := c.Param("id")
	customer, err := h.svc.GetCustomer(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "customer not found")
		return
	}
	Success(c, customer)
}
