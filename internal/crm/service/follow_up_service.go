package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/entity"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/followup"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/repository"
	"github.com/redis/go-redis/v9"
)

const (
	statsCacheKey = "crm:followup:stats"
	statsCacheTTL = 60 * time.Second
)

// FollowUpService ties the pure follow-up engine to the persistence
// collaborators. It keeps no derived state of its own: every queue request
// re-fetches both snapshots and re-runs generation + reconciliation, so the
// view is always as fresh as the last read.
type FollowUpService struct {
	customerRepo *repository.CustomerRepository
	logRepo      *repository.FollowUpLogRepository
	rdb          *redis.Client

	// now is swappable in tests; the engine itself never reads the clock.
	now func() time.Time
}

func NewFollowUpService(customerRepo *repository.CustomerRepository, logRepo *repository.FollowUpLogRepository, rdb *redis.Client) *FollowUpService {
	return &FollowUpService{
		customerRepo: customerRepo,
		logRepo:      logRepo,
		rdb:          rdb,
		now:          time.Now,
	}
}

// SetNowFunc 注入时间源（测试用）
func (s *FollowUpService) SetNowFunc(now func() time.Time) {
	s.now = now
}

// Queue generates one page of the live follow-up queue for a tab.
func (s *FollowUpService) Queue(ctx context.Context, tab, search string, page int) (*followup.QueueResult, error) {
	customers, err := s.customerRepo.ListActiveWithBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	logs, err := s.logRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list follow-up logs: %w", err)
	}

	obligations := followup.Generate(customers, s.now())
	ledger := followup.Reconcile(logs)
	result := followup.Project(obligations, ledger, tab, search, page)
	return &result, nil
}

// History pages the raw outcome log, newest first.
func (s *FollowUpService) History(ctx context.Context, page int) (*followup.HistoryResult, error) {
	logs, err := s.logRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list follow-up logs: %w", err)
	}
	result := followup.HistoryPage(logs, page)
	return &result, nil
}

// RecordOutcomeRequest 记录回访结果
type RecordOutcomeRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	BranchName string `json:"branch_name" binding:"required"`
	Round      int    `json:"round" binding:"required"`
	CSOwner    string `json:"cs_owner"`
	DueDate    string `json:"due_date"` // YYYY-MM-DD, as carried on the obligation
	Outcome    string `json:"outcome" binding:"required"`
	Feedback   string `json:"feedback"`
}

// RecordOutcome appends one immutable log entry for a call attempt or
// completion. Calling it twice for the same identity appends twice — never a
// merge, never an error; suppression is a set union so duplicate completions
// stay harmless. On failure the ledger is unchanged and the obligation stays
// in the live queue.
func (s *FollowUpService) RecordOutcome(ctx context.Context, req *RecordOutcomeRequest) (*entity.FollowUpLog, error) {
	if !entity.ValidOutcomes[req.Outcome] {
		return nil, fmt.Errorf("invalid outcome %q", req.Outcome)
	}
	if !followup.IsMilestone(req.Round) {
		return nil, fmt.Errorf("invalid round %d", req.Round)
	}

	var dueDate time.Time
	if req.DueDate != "" {
		d, err := time.ParseInLocation("2006-01-02", req.DueDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid due_date %q", req.DueDate)
		}
		dueDate = d
	}

	entry := &entity.FollowUpLog{
		ID:          uuid.New().String()[:32],
		CustomerID:  req.CustomerID,
		BranchName:  req.BranchName,
		Round:       req.Round,
		CSOwner:     req.CSOwner,
		DueDate:     dueDate,
		CompletedAt: s.now(),
		Feedback:    req.Feedback,
		Outcome:     req.Outcome,
	}

	if err := s.logRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append follow-up log: %w", err)
	}

	// The stats cache is an index, not a source of truth; drop it so the
	// next read re-derives from the updated log.
	if s.rdb != nil {
		s.rdb.Del(ctx, statsCacheKey)
	}

	return entry, nil
}

// QueueStats 各标签页任务数
type QueueStats struct {
	Today     int `json:"today"`
	Overdue   int `json:"overdue"`
	Upcoming  int `json:"upcoming"`
	All       int `json:"all"`
	Completed int `json:"completed"`
}

// Stats counts the queue buckets, cached in redis for a short TTL and
// invalidated on every recorded outcome.
func (s *FollowUpService) Stats(ctx context.Context) (*QueueStats, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats QueueStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	customers, err := s.customerRepo.ListActiveWithBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	logs, err := s.logRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list follow-up logs: %w", err)
	}

	obligations := followup.Generate(customers, s.now())
	ledger := followup.Reconcile(logs)

	stats := &QueueStats{
		Today:     followup.Project(obligations, ledger, followup.TabToday, "", 1).TotalCount,
		Overdue:   followup.Project(obligations, ledger, followup.TabOverdue, "", 1).TotalCount,
		Upcoming:  followup.Project(obligations, ledger, followup.TabUpcoming, "", 1).TotalCount,
		All:       followup.Project(obligations, ledger, followup.TabAll, "", 1).TotalCount,
		Completed: ledger.CompletedCount(),
	}

	if s.rdb != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.rdb.Set(ctx, statsCacheKey, data, statsCacheTTL)
		}
	}

	return stats, nil
}
