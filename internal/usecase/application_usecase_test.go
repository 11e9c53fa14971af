package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activeJob(id, recruiterID int64) *domain.JobPosting {
	return &domain.JobPosting{
		ID:               id,
		RecruiterID:      recruiterID,
		Title:            "Senior Python Developer",
		Status:           domain.JobStatusActive,
		ModerationStatus: domain.ModerationApproved,
	}
}

func TestApply(t *testing.T) {
	t.Run("Should create an application for an approved active job", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs)

		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(activeJob(1, 9), nil)
		mockApps.On("Exists", mock.Anything, int64(1), int64(5)).Return(false, nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobApplication")).Return(nil)

		app, already, err := uc.Apply(context.Background(), 5, 1, "I am interested")
		assert.NoError(t, err)
		assert.False(t, already)
		assert.Equal(t, int64(1), app.JobID)
		assert.Equal(t, int64(5), app.ApplicantID)
		assert.NotNil(t, app.CoverLetter)
	})

	t.Run("Should report duplicate without writing a second record", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs)

		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(activeJob(1, 9), nil)
		mockApps.On("Exists", mock.Anything, int64(1), int64(5)).Return(true, nil)

		app, already, err := uc.Apply(context.Background(), 5, 1, "")
		assert.NoError(t, err)
		assert.True(t, already)
		assert.Nil(t, app)
		mockApps.AssertNotCalled(t, "Create")
	})

	t.Run("Should treat a concurrent duplicate the same as the pre-check", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs)

		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(activeJob(1, 9), nil)
		mockApps.On("Exists", mock.Anything, int64(1), int64(5)).Return(false, nil)
		mockApps.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("duplicate"))

		_, already, err := uc.Apply(context.Background(), 5, 1, "")
		assert.NoError(t, err)
		assert.True(t, already)
	})

	t.Run("Should refuse a posting that is not publicly open", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs)

		mockJobs.On("GetByID", mock.Anything, int64(2)).Return(&domain.JobPosting{
			ID:               2,
			Status:           domain.JobStatusActive,
			ModerationStatus: domain.ModerationPending,
		}, nil)

		_, _, err := uc.Apply(context.Background(), 5, 2, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not open for applications")
		mockApps.AssertNotCalled(t, "Exists")
		mockApps.AssertNotCalled(t, "Create")
	})

	t.Run("Should 404 on a missing job", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs)

		mockJobs.On("GetByID", mock.Anything, int64(999)).Return(nil, domain.ErrNotFound)

		_, _, err := uc.Apply(context.Background(), 5, 999, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})
}

func TestListForJob(t *testing.T) {
	mockApps := new(MockApplicationRepo)
	mockJobs := new(MockJobRepo)
	uc := usecase.NewApplicationUsecase(mockApps, mockJobs)

	t.Run("Should refuse applications of another recruiter's posting", func(t *testing.T) {
		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(activeJob(1, 9), nil)

		_, err := uc.ListForJob(context.Background(), 7, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own job postings")
		mockApps.AssertNotCalled(t, "GetByJobID")
	})
}
