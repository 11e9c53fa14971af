package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, recruiter_id, title, description, required_skills, location,
	salary_min, salary_max, is_remote, visa_sponsorship, status,
	moderation_status, moderation_notes, moderated_by, moderated_at,
	created_at, updated_at`

func scanJob(row pgx.Row) (*domain.JobPosting, error) {
	var j domain.JobPosting
	err := row.Scan(
		&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.RequiredSkills,
		&j.Location, &j.SalaryMin, &j.SalaryMax, &j.IsRemote, &j.VisaSponsorship,
		&j.Status, &j.ModerationStatus, &j.ModerationNotes, &j.ModeratedBy,
		&j.ModeratedAt, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings
		(recruiter_id, title, description, required_skills, location,
		 salary_min, salary_max, is_remote, visa_sponsorship, status,
		 moderation_status, moderation_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.RecruiterID, job.Title, job.Description, job.RequiredSkills,
		job.Location, job.SalaryMin, job.SalaryMax, job.IsRemote,
		job.VisaSponsorship, job.Status, job.ModerationStatus,
		job.ModerationNotes, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

// searchConditions builds the WHERE clause for the public search. The
// active/approved gate is hardcoded server-side; filter parameters only
// ever narrow the result.
func searchConditions(filter domain.SearchFilter) (string, []interface{}) {
	conds := []string{"status = 'active'", "moderation_status = 'approved'"}
	args := []interface{}{}

	addArg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Title != "" {
		conds = append(conds, "title ILIKE "+addArg("%"+filter.Title+"%"))
	}
	if filter.Location != "" {
		conds = append(conds, "location ILIKE "+addArg("%"+filter.Location+"%"))
	}
	if filter.Skills != "" {
		conds = append(conds, "required_skills ILIKE "+addArg("%"+filter.Skills+"%"))
	}
	if filter.SalaryMin != nil {
		conds = append(conds, "salary_min >= "+addArg(*filter.SalaryMin))
	}
	if filter.RemoteOnly {
		conds = append(conds, "is_remote = TRUE")
	}
	if filter.VisaOnly {
		conds = append(conds, "visa_sponsorship = TRUE")
	}

	return strings.Join(conds, " AND "), args
}

func (r *jobRepo) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.JobPosting, error) {
	where, args := searchConditions(filter)
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE ` + where +
		` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
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

func (r *jobRepo) FetchByRecruiter(ctx context.Context, recruiterID int64, limit, offset int) ([]domain.JobPosting, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings
		WHERE recruiter_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, recruiterID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE recruiter_id = $1`, recruiterID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Update writes the recruiter-owned content fields only. Moderation fields
// are owned by the moderation repository.
func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `UPDATE job_postings SET
		title = $2,
		description = $3,
		required_skills = $4,
		location = $5,
		salary_min = $6,
		salary_max = $7,
		is_remote = $8,
		visa_sponsorship = $9,
		status = $10,
		updated_at = $11
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.RequiredSkills, job.Location,
		job.SalaryMin, job.SalaryMax, job.IsRemote, job.VisaSponsorship,
		job.Status, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM job_postings WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
