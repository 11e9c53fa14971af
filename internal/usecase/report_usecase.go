package usecase

import (
	"context"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type reportUsecase struct {
	reportRepo domain.ReportRepository
}

func NewReportUsecase(reportRepo domain.ReportRepository) domain.ReportUsecase {
	return &reportUsecase{reportRepo: reportRepo}
}

func (u *reportUsecase) JobsReport(ctx context.Context) ([]domain.JobPosting, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return u.reportRepo.FetchAllJobs(ctx)
}

func (u *reportUsecase) UsersReport(ctx context.Context) ([]domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return u.reportRepo.FetchAllUsers(ctx)
}

// AnalyticsReport builds the category-count breakdown across posting
// status, user role, and moderation status. Each percentage is taken
// against its own dimension's total and reported as 0 when that total is
// zero.
func (u *reportUsecase) AnalyticsReport(ctx context.Context) ([]domain.AnalyticsRow, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	jobStatus, err := u.reportRepo.CountJobsByStatus(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	userRoles, err := u.reportRepo.CountUsersByRole(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	moderation, err := u.reportRepo.CountJobsByModerationStatus(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var rows []domain.AnalyticsRow
	rows = append(rows, dimensionRows("Jobs", jobStatus)...)
	rows = append(rows, dimensionRows("Users", userRoles)...)
	rows = append(rows, dimensionRows("Moderation", moderation)...)
	return rows, nil
}

func dimensionRows(prefix string, counts []domain.CategoryCount) []domain.AnalyticsRow {
	var total int64
	for _, c := range counts {
		total += c.Count
	}

	rows := make([]domain.AnalyticsRow, 0, len(counts))
	for _, c := range counts {
		var pct float64
		if total > 0 {
			pct = float64(c.Count) / float64(total) * 100
		}
		rows = append(rows, domain.AnalyticsRow{
			Metric:     prefix + " - " + DisplayLabel(c.Value),
			Count:      c.Count,
			Percentage: pct,
		})
	}
	return rows
}

// DisplayLabel renders an enum value for reports: underscores become
// spaces and each word is capitalized ("job_seeker" -> "Job Seeker").
func DisplayLabel(value string) string {
	words := strings.Split(value, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
