package domain

import (
	"context"
	"time"
)

// JobSeekerProfile is the 1:1 profile owned by a job_seeker user.
// The visibility booleans are independent switches over individual
// profile sections; AllowContact gates inbound recruiter messages.
type JobSeekerProfile struct {
	ID             int64    `json:"id"`
	UserID         int64    `json:"user_id"`
	Headline       string   `json:"headline" validate:"max=255"`
	Skills         []string `json:"skills"`
	Education      string   `json:"education"`
	WorkExperience string   `json:"work_experience"`
	Links          string   `json:"links"`
	Phone          string   `json:"phone" validate:"valid_phone"`

	ProfileVisible     bool `json:"profile_visible"`
	ShowEmail          bool `json:"show_email"`
	ShowPhone          bool `json:"show_phone"`
	ShowSkills         bool `json:"show_skills"`
	ShowEducation      bool `json:"show_education"`
	ShowWorkExperience bool `json:"show_work_experience"`
	ShowLinks          bool `json:"show_links"`
	AllowContact       bool `json:"allow_contact"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*JobSeekerProfile, error)
	Create(ctx context.Context, profile *JobSeekerProfile) error
	Update(ctx context.Context, profile *JobSeekerProfile) error
}

type ProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID int64) (*JobSeekerProfile, error)
	// SaveProfile creates the profile on first save and updates it afterwards.
	SaveProfile(ctx context.Context, profile *JobSeekerProfile) error
}
