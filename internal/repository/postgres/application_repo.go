package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	query := `INSERT INTO job_applications (job_id, applicant_id, cover_letter, created_at)
              VALUES ($1, $2, $3, NOW()) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, app.JobID, app.ApplicantID, app.CoverLetter).
		Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// The (job_id, applicant_id) unique constraint backs the at-most-one
		// invariant even under concurrent submissions.
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already applied to this job")
		}
		return err
	}
	return nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, applicantID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_id = $1 AND applicant_id = $2)`
	err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.created_at,
		       u.username, j.title
		FROM job_applications a
		JOIN users u ON a.applicant_id = u.id
		JOIN job_postings j ON a.job_id = j.id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`

	return r.fetch(ctx, query, jobID)
}

func (r *applicationRepo) GetByApplicant(ctx context.Context, applicantID int64) ([]domain.JobApplication, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.created_at,
		       u.username, j.title
		FROM job_applications a
		JOIN users u ON a.applicant_id = u.id
		JOIN job_postings j ON a.job_id = j.id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`

	return r.fetch(ctx, query, applicantID)
}

func (r *applicationRepo) fetch(ctx context.Context, query string, arg interface{}) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		var a domain.JobApplication
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.CoverLetter,
			&a.CreatedAt, &a.ApplicantUsername, &a.JobTitle); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
