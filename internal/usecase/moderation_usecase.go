package usecase

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type moderationUsecase struct {
	moderationRepo domain.ModerationRepository
}

func NewModerationUsecase(moderationRepo domain.ModerationRepository) domain.ModerationUsecase {
	return &moderationUsecase{moderationRepo: moderationRepo}
}

// transitionFor maps a moderation action onto the moderation status and the
// correlated lifecycle status. An empty lifecycle status leaves the
// posting's own status untouched (the flag action).
func transitionFor(action string) (moderationStatus, lifecycleStatus string, ok bool) {
	switch action {
	case domain.ActionApprove:
		return domain.ModerationApproved, domain.JobStatusActive, true
	case domain.ActionReject:
		return domain.ModerationRejected, domain.JobStatusInactive, true
	case domain.ActionFlag:
		return domain.ModerationFlagged, "", true
	default:
		return "", "", false
	}
}

func requireAdmin(ctx context.Context) error {
	role, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || role != domain.RoleAdmin {
		return apperror.Forbidden("Only administrators can access that page")
	}
	return nil
}

func (u *moderationUsecase) Moderate(ctx context.Context, adminID, jobID int64, action, notes string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if action == domain.ActionDelete {
		err := u.moderationRepo.DeleteJob(ctx, jobID)
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}

	moderationStatus, lifecycleStatus, ok := transitionFor(action)
	if !ok {
		return apperror.BadRequest("Unknown moderation action")
	}

	err := u.moderationRepo.ApplyDecision(ctx, jobID, adminID, moderationStatus, lifecycleStatus, &notes)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	return err
}

// BulkModerate applies approve, reject, or delete across the given posting
// identifiers. Unknown identifiers are skipped without error; the returned
// count covers only the postings actually changed. Bulk actions carry no
// notes, so notes saved by an earlier single decision are left alone.
func (u *moderationUsecase) BulkModerate(ctx context.Context, adminID int64, jobIDs []int64, action string) (int, error) {
	if err := requireAdmin(ctx); err != nil {
		return 0, err
	}
	if len(jobIDs) == 0 {
		return 0, apperror.BadRequest("No jobs selected")
	}
	if action != domain.ActionApprove && action != domain.ActionReject && action != domain.ActionDelete {
		return 0, apperror.BadRequest("Unknown bulk action")
	}

	count := 0
	for _, jobID := range jobIDs {
		var err error
		if action == domain.ActionDelete {
			err = u.moderationRepo.DeleteJob(ctx, jobID)
		} else {
			moderationStatus, lifecycleStatus, _ := transitionFor(action)
			err = u.moderationRepo.ApplyDecision(ctx, jobID, adminID, moderationStatus, lifecycleStatus, nil)
		}
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return count, err
		}
		count++
	}
	return count, nil
}

func (u *moderationUsecase) Queue(ctx context.Context, filter domain.ModerationQueueFilter) ([]domain.JobPosting, int64, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}

	if filter.Status == "" {
		filter.Status = domain.ModerationPending
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	return u.moderationRepo.FetchQueue(ctx, filter)
}

func (u *moderationUsecase) Dashboard(ctx context.Context) (*domain.DashboardStats, []domain.JobPosting, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, nil, err
	}

	stats, err := u.moderationRepo.GetStats(ctx)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	recent, err := u.moderationRepo.RecentPending(ctx, 5)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return stats, recent, nil
}
