package domain

import (
	"context"
	"time"
)

// Message is a directed message between two users. IsRead flips only when
// the recipient views the message.
type Message struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"sender_id"`
	RecipientID int64     `json:"recipient_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined data for list responses
	SenderUsername    *string `json:"sender_username,omitempty"`
	RecipientUsername *string `json:"recipient_username,omitempty"`
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	GetByID(ctx context.Context, id int64) (*Message, error)
	FetchInbox(ctx context.Context, userID int64) ([]Message, error)
	FetchSent(ctx context.Context, userID int64) ([]Message, error)
	// FetchConversation returns both directions between the two users,
	// oldest first.
	FetchConversation(ctx context.Context, userA, userB int64) ([]Message, error)
	MarkRead(ctx context.Context, id int64) error
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

type MessageUsecase interface {
	// Compose enforces the sender-role gating: recruiters may message any
	// job seeker whose profile allows contact; job seekers may only reply
	// (replyTo set) to a message they received, back to its sender.
	Compose(ctx context.Context, senderID int64, senderRole string, recipientID int64, subject, body string, replyTo *int64) (*Message, error)
	Inbox(ctx context.Context, userID int64) ([]Message, int64, error)
	Sent(ctx context.Context, userID int64) ([]Message, error)
	// View returns the message to a participant; a recipient view marks
	// the message read.
	View(ctx context.Context, userID, messageID int64) (*Message, error)
	Conversation(ctx context.Context, userID, otherUserID int64) ([]Message, error)
}
