package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.JobSeekerProfile, error) {
	query := `
		SELECT id, user_id, headline, skills, education, work_experience, links, phone,
		       profile_visible, show_email, show_phone, show_skills, show_education,
		       show_work_experience, show_links, allow_contact,
		       created_at, updated_at
		FROM job_seeker_profiles WHERE user_id = $1`

	var p domain.JobSeekerProfile
	var skills []string

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Headline, pq.Array(&skills), &p.Education,
		&p.WorkExperience, &p.Links, &p.Phone,
		&p.ProfileVisible, &p.ShowEmail, &p.ShowPhone, &p.ShowSkills,
		&p.ShowEducation, &p.ShowWorkExperience, &p.ShowLinks, &p.AllowContact,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.JobSeekerProfile) error {
	query := `
		INSERT INTO job_seeker_profiles
			(user_id, headline, skills, education, work_experience, links, phone,
			 profile_visible, show_email, show_phone, show_skills, show_education,
			 show_work_experience, show_links, allow_contact,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.Headline, pq.Array(profile.Skills),
		profile.Education, profile.WorkExperience, profile.Links, profile.Phone,
		profile.ProfileVisible, profile.ShowEmail, profile.ShowPhone,
		profile.ShowSkills, profile.ShowEducation, profile.ShowWorkExperience,
		profile.ShowLinks, profile.AllowContact,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.JobSeekerProfile) error {
	query := `
		UPDATE job_seeker_profiles SET
			headline = $2, skills = $3, education = $4, work_experience = $5,
			links = $6, phone = $7,
			profile_visible = $8, show_email = $9, show_phone = $10,
			show_skills = $11, show_education = $12, show_work_experience = $13,
			show_links = $14, allow_contact = $15,
			updated_at = NOW()
		WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.Headline, pq.Array(profile.Skills),
		profile.Education, profile.WorkExperience, profile.Links, profile.Phone,
		profile.ProfileVisible, profile.ShowEmail, profile.ShowPhone,
		profile.ShowSkills, profile.ShowEducation, profile.ShowWorkExperience,
		profile.ShowLinks, profile.AllowContact,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
