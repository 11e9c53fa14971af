package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo, validate: validate}
}

// getAuthenticatedUserID reads the caller identity set by the auth
// middleware. Fails safe when the context carries no identity.
func getAuthenticatedUserID(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || id == 0 {
		return 0, apperror.Unauthorized("User not authenticated")
	}
	return id, nil
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, userID int64) (*domain.JobSeekerProfile, error) {
	ctxUserID, err := getAuthenticatedUserID(ctx)
	if err != nil {
		return nil, err
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Please create your profile first")
	}
	return profile, nil
}

// SaveProfile lazily creates the profile on first save, then updates it.
// The owner is always taken from the request context, never the payload.
func (u *profileUsecase) SaveProfile(ctx context.Context, profile *domain.JobSeekerProfile) error {
	ctxUserID, err := getAuthenticatedUserID(ctx)
	if err != nil {
		return err
	}
	profile.UserID = ctxUserID

	if err := u.validate.Struct(profile); err != nil {
		msgs := validation.FormatValidationErrors(err)
		if len(msgs) > 0 {
			return apperror.BadRequest(msgs[0])
		}
		return apperror.BadRequest(err.Error())
	}

	existing, err := u.profileRepo.GetByUserID(ctx, ctxUserID)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil {
		return u.profileRepo.Create(ctx, profile)
	}

	profile.ID = existing.ID
	return u.profileRepo.Update(ctx, profile)
}
