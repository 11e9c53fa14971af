package domain

import (
	"context"
	"time"
)

// JobApplication links one job seeker to one posting. At most one
// application exists per (job, applicant) pair, and a created record is
// never mutated.
type JobApplication struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	ApplicantID int64     `json:"applicant_id"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined data for list responses
	ApplicantUsername *string `json:"applicant_username,omitempty"`
	JobTitle          *string `json:"job_title,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *JobApplication) error
	Exists(ctx context.Context, jobID, applicantID int64) (bool, error)
	GetByJobID(ctx context.Context, jobID int64) ([]JobApplication, error)
	GetByApplicant(ctx context.Context, applicantID int64) ([]JobApplication, error)
}

type ApplicationUsecase interface {
	// Apply is idempotent on duplicates: the second attempt for the same
	// (job, applicant) pair returns alreadyApplied=true and writes nothing.
	Apply(ctx context.Context, applicantID, jobID int64, coverLetter string) (app *JobApplication, alreadyApplied bool, err error)
	ListMine(ctx context.Context, applicantID int64) ([]JobApplication, error)
	ListForJob(ctx context.Context, recruiterID, jobID int64) ([]JobApplication, error)
}
