package usecase

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Apply creates an application for an active, approved posting. A repeat
// application for the same pair reports alreadyApplied instead of failing,
// and never writes a second record.
func (uc *applicationUsecase) Apply(ctx context.Context, applicantID, jobID int64, coverLetter string) (*domain.JobApplication, bool, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, apperror.NotFound("Job not found")
		}
		return nil, false, apperror.Internal(err)
	}
	if !job.PubliclySearchable() {
		return nil, false, apperror.BadRequest("This job is not open for applications")
	}

	exists, err := uc.applicationRepo.Exists(ctx, jobID, applicantID)
	if err != nil {
		return nil, false, apperror.Internal(err)
	}
	if exists {
		return nil, true, nil
	}

	var coverLetterPtr *string
	if coverLetter != "" {
		coverLetterPtr = &coverLetter
	}

	app := &domain.JobApplication{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: coverLetterPtr,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		// A concurrent duplicate trips the unique constraint; report it the
		// same way as the pre-check.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == 409 {
			return nil, true, nil
		}
		return nil, false, apperror.Internal(err)
	}

	return app, false, nil
}

func (uc *applicationUsecase) ListMine(ctx context.Context, applicantID int64) ([]domain.JobApplication, error) {
	return uc.applicationRepo.GetByApplicant(ctx, applicantID)
}

// ListForJob returns a posting's applications to its owning recruiter.
func (uc *applicationUsecase) ListForJob(ctx context.Context, recruiterID, jobID int64) ([]domain.JobApplication, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.RecruiterID != recruiterID {
		return nil, apperror.Forbidden("You can only view applications for your own job postings")
	}

	return uc.applicationRepo.GetByJobID(ctx, jobID)
}
