package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	autoApproveJobs bool
}

func NewJobUsecase(jobRepo domain.JobRepository, autoApproveJobs bool) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:         jobRepo,
		autoApproveJobs: autoApproveJobs,
	}
}

// ParseSearchFilter builds a SearchFilter from raw query parameters.
// Non-numeric salary_min is ignored rather than rejected, and the remote
// and visa filters apply only when the parameter is literally "true".
func ParseSearchFilter(title, location, skills, salaryMin, isRemote, visaSponsorship string) domain.SearchFilter {
	filter := domain.SearchFilter{
		Title:    title,
		Location: location,
		Skills:   skills,
	}
	if salaryMin != "" {
		if v, err := strconv.ParseInt(salaryMin, 10, 64); err == nil {
			filter.SalaryMin = &v
		}
	}
	filter.RemoteOnly = isRemote == "true"
	filter.VisaOnly = visaSponsorship == "true"
	return filter
}

func (u *jobUsecase) CreatePosting(ctx context.Context, recruiterID int64, job *domain.JobPosting) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.BadRequest("Minimum salary cannot be greater than maximum salary")
	}

	job.RecruiterID = recruiterID
	if u.autoApproveJobs {
		job.Status = domain.JobStatusActive
		job.ModerationStatus = domain.ModerationApproved
	} else {
		job.Status = domain.JobStatusPending
		job.ModerationStatus = domain.ModerationPending
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	return u.jobRepo.Create(ctx, job)
}

// GetPublicPosting returns a posting only while it satisfies the
// public-search invariant.
func (u *jobUsecase) GetPublicPosting(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.PubliclySearchable() {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) GetOwnPosting(ctx context.Context, recruiterID, id int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.RecruiterID != recruiterID {
		return nil, apperror.Forbidden("You can only manage your own job postings")
	}
	return job, nil
}

func (u *jobUsecase) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.JobPosting, error) {
	return u.jobRepo.Search(ctx, filter)
}

func (u *jobUsecase) ListByRecruiter(ctx context.Context, recruiterID int64, page, pageSize int) ([]domain.JobPosting, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchByRecruiter(ctx, recruiterID, pageSize, offset)
}

// UpdatePosting writes content fields for the owning recruiter. Moderation
// fields are out of reach here; they belong to the moderation workflow.
func (u *jobUsecase) UpdatePosting(ctx context.Context, recruiterID int64, job *domain.JobPosting) error {
	existing, err := u.GetOwnPosting(ctx, recruiterID, job.ID)
	if err != nil {
		return err
	}

	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.BadRequest("Minimum salary cannot be greater than maximum salary")
	}
	if job.Status == "" {
		job.Status = existing.Status
	}

	job.RecruiterID = recruiterID
	job.UpdatedAt = time.Now()

	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeletePosting(ctx context.Context, recruiterID, id int64) error {
	if _, err := u.GetOwnPosting(ctx, recruiterID, id); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, id)
}
