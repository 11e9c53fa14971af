package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Register creates the account and returns a session token (auto-login).
// Self-registration is limited to job_seeker and recruiter; admin accounts
// are only created by role assignment from an existing admin.
func (u *authUsecase) Register(ctx context.Context, user *domain.User, password string) (string, error) {
	if user.Role != domain.RoleJobSeeker && user.Role != domain.RoleRecruiter {
		return "", apperror.BadRequest("Account type must be job_seeker or recruiter")
	}

	// A pre-check so the caller gets a message naming the email rather than
	// the generic unique-constraint conflict from Create.
	if existing, err := u.userRepo.GetByEmail(ctx, user.Email); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", apperror.Internal(err)
	} else if existing != nil {
		return "", apperror.Conflict("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.Internal(err)
	}
	user.PasswordHash = string(hash)
	user.IsActive = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := u.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return token, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid username or password")
		}
		return nil, "", apperror.Internal(err)
	}
	if !user.IsActive {
		return nil, "", apperror.Unauthorized("This account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid username or password")
	}

	// The timestamp is informational; login proceeds even if it fails.
	_ = u.userRepo.TouchLastLogin(ctx, user.ID)

	token, err := u.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// AssignRole changes a user's role. Only admins may call this; a user can
// never change their own role tag.
func (u *authUsecase) AssignRole(ctx context.Context, userID int64, role string) error {
	ctxRole, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || ctxRole != domain.RoleAdmin {
		return apperror.Forbidden("Only administrators can assign roles")
	}
	if !domain.ValidRole(role) {
		return apperror.BadRequest("Unknown role")
	}

	if err := u.userRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
