package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/ports"
	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// ReportPDFGenerator renders the analytics dashboard as a downloadable
// document. Implemented by infrastructure/pdf.
type ReportPDFGenerator interface {
	GenerateAnalyticsReport(ctx context.Context, owner *entity.Session, data *dto.AnalyticsDTO) ([]byte, error)
}

// AnalyticsUseCase fetches the dashboard for the session's scope and derives
// the per-department completion rates the backend does not send.
type AnalyticsUseCase struct {
	backend ports.HRMBackend
	pdf     ReportPDFGenerator
}

// NewAnalyticsUseCase builds the use case.
func NewAnalyticsUseCase(backend ports.HRMBackend, pdf ReportPDFGenerator) *AnalyticsUseCase {
	return &AnalyticsUseCase{backend: backend, pdf: pdf}
}

// GetDashboard returns the analytics payload. Admins see the company-wide
// dashboard, managers their department's; employees have no dashboard.
func (uc *AnalyticsUseCase) GetDashboard(ctx context.Context, sess *entity.Session) (*dto.AnalyticsDTO, error) {
	var (
		data *dto.AnalyticsDTO
		err  error
	)
	switch sess.Role {
	case entity.RoleAdmin:
		data, err = uc.backend.AdminAnalytics(ctx)
	case entity.RoleManager:
		deptID := 0
		if sess.DepartmentID != nil {
			deptID = *sess.DepartmentID
		}
		data, err = uc.backend.ManagerAnalytics(ctx, sess.UserID, deptID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}

	for i := range data.DepartmentStats {
		data.DepartmentStats[i].CompletionRate = completionRate(
			data.DepartmentStats[i].CompletedTasks,
			data.DepartmentStats[i].TotalTasks,
		)
	}
	return data, nil
}

// GenerateReport fetches the dashboard and renders it as a PDF. Returns the
// document bytes and a timestamped file name.
func (uc *AnalyticsUseCase) GenerateReport(ctx context.Context, sess *entity.Session) ([]byte, string, error) {
	data, err := uc.GetDashboard(ctx, sess)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.pdf.GenerateAnalyticsReport(ctx, sess, data)
	if err != nil {
		return nil, "", fmt.Errorf("analytics report: %w", err)
	}
	name := fmt.Sprintf("analytics-report-%s.pdf", time.Now().Format("20060102-150405"))
	return doc, name, nil
}

// completionRate = completed/total * 100, two decimals; zero when no tasks.
func completionRate(completed, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(completed)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred).
		Round(2)
}
