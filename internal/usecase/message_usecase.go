package usecase

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
}

func NewMessageUsecase(messageRepo domain.MessageRepository, userRepo domain.UserRepository, profileRepo domain.ProfileRepository) domain.MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Compose gates message creation by sender role before anything is written:
//   - recruiters may message any job seeker, unless the seeker's profile
//     has allow_contact disabled;
//   - job seekers may only reply to a message they received, and only back
//     to its sender;
//   - admins are unrestricted.
func (u *messageUsecase) Compose(ctx context.Context, senderID int64, senderRole string, recipientID int64, subject, body string, replyTo *int64) (*domain.Message, error) {
	if recipientID == senderID {
		return nil, apperror.BadRequest("You cannot message yourself")
	}

	recipient, err := u.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recipient not found")
		}
		return nil, apperror.Internal(err)
	}

	switch senderRole {
	case domain.RoleRecruiter:
		if recipient.Role == domain.RoleJobSeeker {
			profile, err := u.profileRepo.GetByUserID(ctx, recipientID)
			if err != nil {
				return nil, apperror.Internal(err)
			}
			if profile != nil && !profile.AllowContact {
				return nil, apperror.Forbidden("This user has disabled contact from recruiters")
			}
		}
	case domain.RoleJobSeeker:
		if replyTo == nil {
			return nil, apperror.Forbidden("Job seekers can only reply to messages they have received")
		}
		original, err := u.messageRepo.GetByID(ctx, *replyTo)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Message not found")
			}
			return nil, apperror.Internal(err)
		}
		if original.RecipientID != senderID || original.SenderID != recipientID {
			return nil, apperror.Forbidden("You can only reply to the sender of a message addressed to you")
		}
	case domain.RoleAdmin:
		// Administrators may contact anyone.
	default:
		return nil, apperror.Forbidden("You are not allowed to send messages")
	}

	msg := &domain.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Subject:     subject,
		Body:        body,
	}
	if err := u.messageRepo.Create(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}
	return msg, nil
}

func (u *messageUsecase) Inbox(ctx context.Context, userID int64) ([]domain.Message, int64, error) {
	msgs, err := u.messageRepo.FetchInbox(ctx, userID)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	unread, err := u.messageRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return msgs, unread, nil
}

func (u *messageUsecase) Sent(ctx context.Context, userID int64) ([]domain.Message, error) {
	return u.messageRepo.FetchSent(ctx, userID)
}

// View returns a message to one of its two participants. Only a recipient
// view flips the read flag; the sender can look without side effects.
func (u *messageUsecase) View(ctx context.Context, userID, messageID int64) (*domain.Message, error) {
	msg, err := u.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Message not found")
		}
		return nil, apperror.Internal(err)
	}
	if msg.SenderID != userID && msg.RecipientID != userID {
		return nil, apperror.Forbidden("You are not a participant in this message")
	}

	if msg.RecipientID == userID && !msg.IsRead {
		if err := u.messageRepo.MarkRead(ctx, msg.ID); err != nil {
			return nil, apperror.Internal(err)
		}
		msg.IsRead = true
	}
	return msg, nil
}

func (u *messageUsecase) Conversation(ctx context.Context, userID, otherUserID int64) ([]domain.Message, error) {
	if _, err := u.userRepo.GetByID(ctx, otherUserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.messageRepo.FetchConversation(ctx, userID, otherUserID)
}
