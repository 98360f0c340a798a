package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/followup"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/service"
)

// FollowUpHandler 回访队列处理器
type FollowUpHandler struct {
	svc       *service.FollowUpService
	exportSvc *service.ExportService
}

func NewFollowUpHandler(svc *service.FollowUpService, exportSvc *service.ExportService) *FollowUpHandler {
	return &FollowUpHandler{svc: svc, exportSvc: exportSvc}
}

func queuePage(c *gin.Context) int {
	page := 1
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	return page
}

// Queue 回访队列（today/overdue/upcoming/all，history走流水）
// GET /api/v1/follow-ups?tab=today&search=xxx&page=1
func (h *FollowUpHandler) Queue(c *gin.Context) {
	tab := c.DefaultQuery("tab", followup.TabAll)
	search := c.Query("search")
	page := queuePage(c)

	// The history tab lists raw ledger entries and ignores search; it is
	// a view over the log, not over the derived queue.
	if tab == followup.TabHistory {
		result, err := h.svc.History(c.Request.Context(), page)
		if err != nil {
			InternalError(c, "list history failed: "+err.Error())
			return
		}
		Success(c, ListResponse{
			Items: result.Items,
			Pagination: &Pagination{
				Page:       page,
				PageSize:   followup.PageSize,
				Total:      result.TotalCount,
				TotalPages: result.TotalPages,
			},
		})
		return
	}

	result, err := h.svc.Queue(c.Request.Context(), tab, search, page)
	if err != nil {
		InternalError(c, "generate queue failed: "+err.Error())
		return
	}

	Success(c, ListResponse{
		Items: result.Items,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   followup.PageSize,
			Total:      result.TotalCount,
			TotalPages: result.TotalPages,
		},
	})
}

// History 回访流水（最新在前）
// GET /api/v1/follow-ups/history?page=1
func (h *FollowUpHandler) History(c *gin.Context) {
	page := queuePage(c)

	result, err := h.svc.History(c.Request.Context(), page)
	if err != nil {
		InternalError(c, "list history failed: "+err.Error())
		return
	}

	Success(c, ListResponse{
		Items: result.Items,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   followup.PageSize,
			Total:      result.TotalCount,
			TotalPages: result.TotalPages,
		},
	})
}

// RecordOutcome 记录回访结果
// POST /api/v1/follow-ups/outcome
func (h *FollowUpHandler) RecordOutcome(c *gin.Context) {
	var req service.RecordOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	entry, err := h.svc.RecordOutcome(c.Request.Context(), &req)
	if err != nil {
		// The append failed or the input was rejected: either way the
		// ledger is unchanged and the obligation stays in the queue.
		BadRequest(c, "record outcome failed: "+err.Error())
		return
	}

	Created(c, entry)
}

// Stats 队列统计
// GET /api/v1/follow-ups/stats
func (h *FollowUpHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		InternalError(c, "queue stats failed: "+err.Error())
		return
	}
	Success(c, stats)
}

// ExportHistory 导出回访流水Excel
// GET /api/v1/follow-ups/export
func (h *FollowUpHandler) ExportHistory(c *gin.Context) {
	f, filename, err := h.exportSvc.BuildHistoryWorkbook(c.Request.Context())
	if err != nil {
		InternalError(c, "export failed: "+err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}

// ArchiveHistory 归档回访流水到对象存储
// POST /api/v1/follow-ups/archive
func (h *FollowUpHandler) ArchiveHistory(c *gin.Context) {
	objectName, err := h.exportSvc.ArchiveHistory(c.Request.Context())
	if err != nil {
		InternalError(c, "archive failed: "+err.Error())
		return
	}
	Created(c, gin.H{"object": objectName})
}
