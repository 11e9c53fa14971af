package postgres

import (
	"context"
	"fmt"
	"strings"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type moderationRepo struct {
	db *pgxpool.Pool
}

func NewModerationRepository(db *pgxpool.Pool) domain.ModerationRepository {
	return &moderationRepo{db: db}
}

// ApplyDecision commits the moderation fields atomically so a crash can
// never leave moderation_status without its moderated_by/moderated_at
// stamp, or out of step with the lifecycle status. A nil notes value
// keeps whatever notes an earlier decision saved.
func (r *moderationRepo) ApplyDecision(ctx context.Context, jobID, adminID int64, moderationStatus, lifecycleStatus string, notes *string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE job_postings SET
		moderation_status = $2,
		moderation_notes = COALESCE($3, moderation_notes),
		moderated_by = $4,
		moderated_at = NOW(),
		updated_at = NOW()
	WHERE id = $1`
	result, err := tx.Exec(ctx, query, jobID, moderationStatus, notes, adminID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if lifecycleStatus != "" {
		if _, err := tx.Exec(ctx,
			`UPDATE job_postings SET status = $2 WHERE id = $1`,
			jobID, lifecycleStatus); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *moderationRepo) DeleteJob(ctx context.Context, jobID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, jobID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *moderationRepo) FetchQueue(ctx context.Context, filter domain.ModerationQueueFilter) ([]domain.JobPosting, int64, error) {
	conds := []string{"1=1"}
	args := []interface{}{}

	addArg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" && filter.Status != "all" {
		conds = append(conds, "j.moderation_status = "+addArg(filter.Status))
	}
	if filter.Search != "" {
		p := addArg("%" + filter.Search + "%")
		conds = append(conds, fmt.Sprintf("(j.title ILIKE %s OR j.description ILIKE %s OR u.username ILIKE %s)", p, p, p))
	}

	where := strings.Join(conds, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM job_postings j JOIN users u ON j.recruiter_id = u.id WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT j.id, j.recruiter_id, j.title, j.description, j.required_skills, j.location,
		       j.salary_min, j.salary_max, j.is_remote, j.visa_sponsorship, j.status,
		       j.moderation_status, j.moderation_notes, j.moderated_by, j.moderated_at,
		       j.created_at, j.updated_at, u.username
		FROM job_postings j
		JOIN users u ON j.recruiter_id = u.id
		WHERE ` + where + `
		ORDER BY j.created_at DESC
		LIMIT ` + addArg(filter.PageSize) + ` OFFSET ` + addArg((filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		var j domain.JobPosting
		if err := rows.Scan(
			&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.RequiredSkills,
			&j.Location, &j.SalaryMin, &j.SalaryMax, &j.IsRemote, &j.VisaSponsorship,
			&j.Status, &j.ModerationStatus, &j.ModerationNotes, &j.ModeratedBy,
			&j.ModeratedAt, &j.CreatedAt, &j.UpdatedAt, &j.RecruiterUsername,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

func (r *moderationRepo) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM job_postings),
			(SELECT COUNT(*) FROM job_postings WHERE moderation_status = 'pending'),
			(SELECT COUNT(*) FROM job_postings WHERE status = 'active'),
			(SELECT COUNT(*) FROM job_postings WHERE moderation_status = 'rejected'),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'job_seeker'),
			(SELECT COUNT(*) FROM users WHERE role = 'recruiter')`

	var s domain.DashboardStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalJobs, &s.PendingJobs, &s.ActiveJobs, &s.RejectedJobs,
		&s.TotalUsers, &s.JobSeekers, &s.Recruiters,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *moderationRepo) RecentPending(ctx context.Context, limit int) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings
		WHERE moderation_status = 'pending'
		ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}
