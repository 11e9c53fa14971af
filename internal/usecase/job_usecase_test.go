package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func int64Ptr(v int64) *int64 { return &v }

func TestParseSearchFilter(t *testing.T) {
	t.Run("Should ignore non-numeric salary_min", func(t *testing.T) {
		filter := usecase.ParseSearchFilter("", "", "", "abc", "", "")
		assert.Nil(t, filter.SalaryMin)
	})

	t.Run("Should parse numeric salary_min", func(t *testing.T) {
		filter := usecase.ParseSearchFilter("", "", "", "120000", "", "")
		assert.NotNil(t, filter.SalaryMin)
		assert.Equal(t, int64(120000), *filter.SalaryMin)
	})

	t.Run("Should only apply boolean filters on literal true", func(t *testing.T) {
		filter := usecase.ParseSearchFilter("", "", "", "", "true", "yes")
		assert.True(t, filter.RemoteOnly)
		assert.False(t, filter.VisaOnly)

		filter = usecase.ParseSearchFilter("", "", "", "", "false", "True")
		assert.False(t, filter.RemoteOnly)
		assert.False(t, filter.VisaOnly)
	})
}

func TestCreatePostingModeration(t *testing.T) {
	t.Run("Should start active and approved when auto-approval is on", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, true)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobPosting")).Return(nil)

		job := &domain.JobPosting{Title: "Backend Engineer"}
		err := uc.CreatePosting(context.Background(), 7, job)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusActive, job.Status)
		assert.Equal(t, domain.ModerationApproved, job.ModerationStatus)
		assert.Equal(t, int64(7), job.RecruiterID)
	})

	t.Run("Should start pending when auto-approval is off", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, false)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobPosting")).Return(nil)

		job := &domain.JobPosting{Title: "Backend Engineer"}
		err := uc.CreatePosting(context.Background(), 7, job)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusPending, job.Status)
		assert.Equal(t, domain.ModerationPending, job.ModerationStatus)
	})

	t.Run("Should reject inverted salary range", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, true)

		job := &domain.JobPosting{
			Title:     "Backend Engineer",
			SalaryMin: int64Ptr(150000),
			SalaryMax: int64Ptr(120000),
		}
		err := uc.CreatePosting(context.Background(), 7, job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Minimum salary cannot be greater")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should require a title", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, true)

		err := uc.CreatePosting(context.Background(), 7, &domain.JobPosting{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Title is required")
	})
}

func TestGetPublicPosting(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo, true)

	t.Run("Should hide a pending posting as not found", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.JobPosting{
			ID:               1,
			Status:           domain.JobStatusActive,
			ModerationStatus: domain.ModerationPending,
		}, nil).Once()

		_, err := uc.GetPublicPosting(context.Background(), 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should hide an inactive posting as not found", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.JobPosting{
			ID:               2,
			Status:           domain.JobStatusInactive,
			ModerationStatus: domain.ModerationApproved,
		}, nil).Once()

		_, err := uc.GetPublicPosting(context.Background(), 2)
		assert.Error(t, err)
	})

	t.Run("Should return an active approved posting", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.JobPosting{
			ID:               3,
			Status:           domain.JobStatusActive,
			ModerationStatus: domain.ModerationApproved,
		}, nil).Once()

		job, err := uc.GetPublicPosting(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), job.ID)
	})
}

func TestJobOwnership(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo, true)

	t.Run("Should refuse managing someone else's posting", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.JobPosting{
			ID:          10,
			RecruiterID: 99,
		}, nil).Once()

		_, err := uc.GetOwnPosting(context.Background(), 7, 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own job postings")
	})

	t.Run("Should refuse deleting someone else's posting", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.JobPosting{
			ID:          10,
			RecruiterID: 99,
		}, nil).Once()

		err := uc.DeletePosting(context.Background(), 7, 10)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}
