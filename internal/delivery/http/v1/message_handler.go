package v1

import (
	"net/http"
	"strconv"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

func NewMessageHandler(protected *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	messages := protected.Group("/messages")
	{
		messages.GET("/inbox", handler.Inbox)
		messages.GET("/sent", handler.Sent)
		messages.POST("", handler.Compose)
		messages.GET("/conversation/:userID", handler.Conversation)
		messages.GET("/:id", handler.View)
	}
}

type ComposeRequest struct {
	RecipientID int64  `json:"recipient_id" binding:"required"`
	Subject     string `json:"subject" binding:"required,max=255"`
	Body        string `json:"body" binding:"required"`
	ReplyTo     *int64 `json:"reply_to"`
}

func (h *MessageHandler) Inbox(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	msgs, unread, err := h.messageUC.Inbox(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Inbox", gin.H{
		"messages":     msgs,
		"unread_count": unread,
	})
}

func (h *MessageHandler) Sent(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	msgs, err := h.messageUC.Sent(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Sent messages", msgs)
}

// Compose sends a message. Role gating lives in the usecase: recruiters
// may initiate, job seekers may only reply.
func (h *MessageHandler) Compose(c *gin.Context) {
	var req ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	senderID := c.GetInt64(string(domain.KeyUserID))
	senderRole := c.GetString(string(domain.KeyUserRole))

	msg, err := h.messageUC.Compose(c.Request.Context(), senderID, senderRole, req.RecipientID, req.Subject, req.Body, req.ReplyTo)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// View shows one message to its participants. Viewing as the recipient
// marks the message read.
func (h *MessageHandler) View(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))

	msg, err := h.messageUC.View(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message", msg)
}

func (h *MessageHandler) Conversation(c *gin.Context) {
	otherID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))

	msgs, err := h.messageUC.Conversation(c.Request.Context(), userID, otherID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conversation", msgs)
}
