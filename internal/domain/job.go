package domain

import (
	"context"
	"time"
)

// Posting lifecycle status
const (
	JobStatusPending  = "pending"
	JobStatusActive   = "active"
	JobStatusInactive = "inactive"
	JobStatusRemoved  = "removed"
	JobStatusRejected = "rejected"
)

// Moderation status, controlled by admins only
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
	ModerationFlagged  = "flagged"
)

type JobPosting struct {
	ID              int64      `json:"id"`
	RecruiterID     int64      `json:"recruiter_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	RequiredSkills  string     `json:"required_skills"`
	Location        string     `json:"location"`
	SalaryMin       *int64     `json:"salary_min"`
	SalaryMax       *int64     `json:"salary_max"`
	IsRemote        bool       `json:"is_remote"`
	VisaSponsorship bool       `json:"visa_sponsorship"`
	Status          string     `json:"status"`
	ModerationStatus string    `json:"moderation_status"`
	ModerationNotes string     `json:"moderation_notes,omitempty"`
	ModeratedBy     *int64     `json:"moderated_by,omitempty"`
	ModeratedAt     *time.Time `json:"moderated_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Joined data for list/export responses
	RecruiterUsername   *string `json:"recruiter_username,omitempty"`
	ModeratedByUsername *string `json:"moderated_by_username,omitempty"`
}

// PubliclySearchable reports whether the posting may appear in public
// search results: lifecycle active and moderation approved.
func (p *JobPosting) PubliclySearchable() bool {
	return p.Status == JobStatusActive && p.ModerationStatus == ModerationApproved
}

// SearchFilter narrows the public posting search. The zero value applies
// only the public-search invariant. A nil SalaryMin means no salary
// constraint; RemoteOnly/VisaOnly constrain only when true.
type SearchFilter struct {
	Title      string
	Location   string
	Skills     string
	SalaryMin  *int64
	RemoteOnly bool
	VisaOnly   bool
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	Search(ctx context.Context, filter SearchFilter) ([]JobPosting, error)
	FetchByRecruiter(ctx context.Context, recruiterID int64, limit, offset int) ([]JobPosting, int64, error)
	Update(ctx context.Context, job *JobPosting) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreatePosting(ctx context.Context, recruiterID int64, job *JobPosting) error
	GetPublicPosting(ctx context.Context, id int64) (*JobPosting, error)
	GetOwnPosting(ctx context.Context, recruiterID, id int64) (*JobPosting, error)
	Search(ctx context.Context, filter SearchFilter) ([]JobPosting, error)
	ListByRecruiter(ctx context.Context, recruiterID int64, page, pageSize int) ([]JobPosting, int64, error)
	UpdatePosting(ctx context.Context, recruiterID int64, job *JobPosting) error
	DeletePosting(ctx context.Context, recruiterID, id int64) error
}
