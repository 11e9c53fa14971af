package domain

import "context"

// Moderation actions, admin-triggered only
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionFlag    = "flag"
	ActionDelete  = "delete"
)

// ModerationQueueFilter narrows the moderation queue listing.
// Status "all" (or empty) disables the moderation_status filter; Search
// matches title, description, or recruiter username.
type ModerationQueueFilter struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

// DashboardStats is the admin moderation overview.
type DashboardStats struct {
	TotalJobs    int64 `json:"total_jobs"`
	PendingJobs  int64 `json:"pending_jobs"`
	ActiveJobs   int64 `json:"active_jobs"`
	RejectedJobs int64 `json:"rejected_jobs"`
	TotalUsers   int64 `json:"total_users"`
	JobSeekers   int64 `json:"job_seekers"`
	Recruiters   int64 `json:"recruiters"`
}

type ModerationRepository interface {
	// ApplyDecision sets moderation_status, the correlated lifecycle
	// status (empty means unchanged), moderation_notes (nil means keep
	// the stored notes) and the moderated_by/moderated_at stamp in a
	// single transaction.
	ApplyDecision(ctx context.Context, jobID, adminID int64, moderationStatus, lifecycleStatus string, notes *string) error
	DeleteJob(ctx context.Context, jobID int64) error
	FetchQueue(ctx context.Context, filter ModerationQueueFilter) ([]JobPosting, int64, error)
	GetStats(ctx context.Context) (*DashboardStats, error)
	RecentPending(ctx context.Context, limit int) ([]JobPosting, error)
}

type ModerationUsecase interface {
	Moderate(ctx context.Context, adminID, jobID int64, action, notes string) error
	// BulkModerate applies approve/reject/delete across the IDs, skipping
	// unknown identifiers silently, and returns the success count.
	BulkModerate(ctx context.Context, adminID int64, jobIDs []int64, action string) (int, error)
	Queue(ctx context.Context, filter ModerationQueueFilter) ([]JobPosting, int64, error)
	Dashboard(ctx context.Context) (*DashboardStats, []JobPosting, error)
}
