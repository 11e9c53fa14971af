package postgres

import (
	"context"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type reportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) domain.ReportRepository {
	return &reportRepo{db: db}
}

// FetchAllJobs returns every posting with recruiter and moderator
// usernames resolved, newest first, for the jobs export.
func (r *reportRepo) FetchAllJobs(ctx context.Context) ([]domain.JobPosting, error) {
	query := `
		SELECT j.id, j.recruiter_id, j.title, j.description, j.required_skills, j.location,
		       j.salary_min, j.salary_max, j.is_remote, j.visa_sponsorship, j.status,
		       j.moderation_status, j.moderation_notes, j.moderated_by, j.moderated_at,
		       j.created_at, j.updated_at, u.username, m.username
		FROM job_postings j
		JOIN users u ON j.recruiter_id = u.id
		LEFT JOIN users m ON j.moderated_by = m.id
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		var j domain.JobPosting
		if err := rows.Scan(
			&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.RequiredSkills,
			&j.Location, &j.SalaryMin, &j.SalaryMax, &j.IsRemote, &j.VisaSponsorship,
			&j.Status, &j.ModerationStatus, &j.ModerationNotes, &j.ModeratedBy,
			&j.ModeratedAt, &j.CreatedAt, &j.UpdatedAt,
			&j.RecruiterUsername, &j.ModeratedByUsername,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *reportRepo) FetchAllUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *reportRepo) CountJobsByStatus(ctx context.Context) ([]domain.CategoryCount, error) {
	return r.countBy(ctx, `SELECT status, COUNT(*) FROM job_postings GROUP BY status ORDER BY status`)
}

func (r *reportRepo) CountJobsByModerationStatus(ctx context.Context) ([]domain.CategoryCount, error) {
	return r.countBy(ctx, `SELECT moderation_status, COUNT(*) FROM job_postings GROUP BY moderation_status ORDER BY moderation_status`)
}

func (r *reportRepo) CountUsersByRole(ctx context.Context) ([]domain.CategoryCount, error) {
	return r.countBy(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role ORDER BY role`)
}

func (r *reportRepo) countBy(ctx context.Context, query string) ([]domain.CategoryCount, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Value, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
