package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func userCtx(id int64) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, id)
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestProfileIDOR(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo, newValidate())

	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		_, err := uc.GetMyProfile(userCtx(1), 2)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when Context UserID is missing", func(t *testing.T) {
		_, err := uc.GetMyProfile(context.Background(), 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestSaveProfile(t *testing.T) {
	t.Run("Should force UserID from context", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		mockRepo.On("GetByUserID", mock.Anything, int64(1)).Return(nil, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobSeekerProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.JobSeekerProfile)
			assert.Equal(t, int64(1), p.UserID)
		})

		profile := &domain.JobSeekerProfile{
			UserID:   999, // spoofed owner
			Headline: "Backend developer",
		}
		err := uc.SaveProfile(userCtx(1), profile)
		assert.NoError(t, err)
	})

	t.Run("Should reject a malformed phone number", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		err := uc.SaveProfile(userCtx(1), &domain.JobSeekerProfile{Phone: "call-me"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "valid phone number")
		mockRepo.AssertNotCalled(t, "Create")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should update when a profile already exists", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		mockRepo.On("GetByUserID", mock.Anything, int64(1)).Return(&domain.JobSeekerProfile{
			ID:     77,
			UserID: 1,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.JobSeekerProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.JobSeekerProfile)
			assert.Equal(t, int64(77), p.ID)
		})

		err := uc.SaveProfile(userCtx(1), &domain.JobSeekerProfile{Headline: "Updated"})
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}
