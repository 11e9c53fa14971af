package domain

import "context"

// Export types accepted by the admin export endpoint
const (
	ExportJobs      = "jobs"
	ExportUsers     = "users"
	ExportAnalytics = "analytics"
)

// AnalyticsRow is one category-count line of the analytics export.
// Percentage is computed against the dimension's total and is 0 when the
// total is zero.
type AnalyticsRow struct {
	Metric     string  `json:"metric"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryCount is a raw grouped count from the store.
type CategoryCount struct {
	Value string
	Count int64
}

type ReportRepository interface {
	FetchAllJobs(ctx context.Context) ([]JobPosting, error)
	FetchAllUsers(ctx context.Context) ([]User, error)
	CountJobsByStatus(ctx context.Context) ([]CategoryCount, error)
	CountJobsByModerationStatus(ctx context.Context) ([]CategoryCount, error)
	CountUsersByRole(ctx context.Context) ([]CategoryCount, error)
}

type ReportUsecase interface {
	JobsReport(ctx context.Context) ([]JobPosting, error)
	UsersReport(ctx context.Context) ([]User, error)
	AnalyticsReport(ctx context.Context) ([]AnalyticsRow, error)
}
