package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "Job Seeker", usecase.DisplayLabel("job_seeker"))
	assert.Equal(t, "Active", usecase.DisplayLabel("active"))
	assert.Equal(t, "Pending", usecase.DisplayLabel("pending"))
	assert.Equal(t, "", usecase.DisplayLabel(""))
}

func TestAnalyticsReport(t *testing.T) {
	t.Run("Should compute percentages per dimension", func(t *testing.T) {
		mockRepo := new(MockReportRepo)
		uc := usecase.NewReportUsecase(mockRepo)

		mockRepo.On("CountJobsByStatus", mock.Anything).Return([]domain.CategoryCount{
			{Value: "active", Count: 3},
			{Value: "pending", Count: 1},
		}, nil)
		mockRepo.On("CountUsersByRole", mock.Anything).Return([]domain.CategoryCount{
			{Value: "job_seeker", Count: 2},
			{Value: "recruiter", Count: 2},
		}, nil)
		mockRepo.On("CountJobsByModerationStatus", mock.Anything).Return([]domain.CategoryCount{
			{Value: "approved", Count: 4},
		}, nil)

		rows, err := uc.AnalyticsReport(adminCtx())
		assert.NoError(t, err)
		assert.Len(t, rows, 5)

		assert.Equal(t, "Jobs - Active", rows[0].Metric)
		assert.Equal(t, int64(3), rows[0].Count)
		assert.InDelta(t, 75.0, rows[0].Percentage, 0.001)
		assert.InDelta(t, 25.0, rows[1].Percentage, 0.001)

		assert.Equal(t, "Users - Job Seeker", rows[2].Metric)
		assert.InDelta(t, 50.0, rows[2].Percentage, 0.001)

		assert.Equal(t, "Moderation - Approved", rows[4].Metric)
		assert.InDelta(t, 100.0, rows[4].Percentage, 0.001)

		var total float64
		for _, row := range rows[:2] {
			total += row.Percentage
		}
		assert.InDelta(t, 100.0, total, 0.001)
	})

	t.Run("Should report zero percentage when a dimension is empty", func(t *testing.T) {
		mockRepo := new(MockReportRepo)
		uc := usecase.NewReportUsecase(mockRepo)

		mockRepo.On("CountJobsByStatus", mock.Anything).Return([]domain.CategoryCount{
			{Value: "active", Count: 0},
		}, nil)
		mockRepo.On("CountUsersByRole", mock.Anything).Return([]domain.CategoryCount{}, nil)
		mockRepo.On("CountJobsByModerationStatus", mock.Anything).Return([]domain.CategoryCount{}, nil)

		rows, err := uc.AnalyticsReport(adminCtx())
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, 0.0, rows[0].Percentage)
	})
}

func TestReportPrivilege(t *testing.T) {
	mockRepo := new(MockReportRepo)
	uc := usecase.NewReportUsecase(mockRepo)

	ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleRecruiter)

	_, err := uc.JobsReport(ctx)
	assert.Error(t, err)

	_, err = uc.UsersReport(ctx)
	assert.Error(t, err)

	_, err = uc.AnalyticsReport(ctx)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "FetchAllJobs")
	mockRepo.AssertNotCalled(t, "FetchAllUsers")
}
