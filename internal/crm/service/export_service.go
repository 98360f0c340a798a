package service

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/config"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/followup"
	"github.com/prakarn00777/Atiz-CRM-sub001/internal/crm/repository"
	"github.com/xuri/excelize/v2"
)

var historyExportHeaders = []string{
	"Customer ID", "Branch", "Round (days)", "CS Owner",
	"Due Date", "Completed At", "Outcome", "Feedback",
}

// ExportService builds xlsx snapshots of the outcome ledger for reporting,
// and archives them to object storage on demand.
type ExportService struct {
	logRepo *repository.FollowUpLogRepository
	mc      *minio.Client
	cfg     *config.Config
}

func NewExportService(logRepo *repository.FollowUpLogRepository, mc *minio.Client, cfg *config.Config) *ExportService {
	return &ExportService{logRepo: logRepo, mc: mc, cfg: cfg}
}

// BuildHistoryWorkbook 导出回访流水Excel
func (s *ExportService) BuildHistoryWorkbook(ctx context.Context) (*excelize.File, string, error) {
	logs, err := s.logRepo.ListAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list follow-up logs: %w", err)
	}

	f := excelize.NewFile()
	sheet := "FollowUpLogs"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range historyExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for i, entry := range logs {
		row := i + 2
		dueDate := ""
		if !entry.DueDate.IsZero() {
			dueDate = entry.DueDate.Format("2006-01-02")
		}
		values := []interface{}{
			entry.CustomerID,
			entry.BranchName,
			entry.Round,
			entry.CSOwner,
			dueDate,
			entry.CompletedAt.Format("2006-01-02 15:04:05"),
			followup.EffectiveOutcome(entry.Outcome),
			entry.Feedback,
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	filename := fmt.Sprintf("follow-up-logs-%s.xlsx", time.Now().Format("20060102-150405"))
	return f, filename, nil
}

// ArchiveHistory uploads a ledger snapshot workbook to object storage and
// returns the object key.
func (s *ExportService) ArchiveHistory(ctx context.Context) (string, error) {
	if s.mc == nil {
		return "", fmt.Errorf("object storage not configured")
	}

	f, filename, err := s.BuildHistoryWorkbook(ctx)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("write workbook: %w", err)
	}

	objectName := "follow-up-archives/" + filename
	_, err = s.mc.PutObject(ctx, s.cfg.MinIO.Bucket, objectName, buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		return "", fmt.Errorf("upload archive: %w", err)
	}

	return objectName, nil
}
