package server

import (
	"vybe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendMessage handles POST /api/messages
// @Summary Send a direct message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{receiver_id=string,content=string} true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /messages [post]
func (s *Server) SendMessage(c *fiber.Ctx) error {
	var req struct {
		ReceiverID string `json:"receiver_id"`
		Content    string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.Send(c.Context(), currentUserID(c), req.ReceiverID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetConversations handles GET /api/conversations
// @Summary List conversations
// @Description Lists the user's conversations, most recently active first, with unread counts
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.Conversation
// @Router /conversations [get]
func (s *Server) GetConversations(c *fiber.Ctx) error {
	conversations, err := s.messageService.Conversations(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(conversations)
}

// MarkMessageRead handles POST /api/messages/:id/read
// @Summary Mark a message as read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} object{message=string}
// @Router /messages/{id}/read [post]
func (s *Server) MarkMessageRead(c *fiber.Ctx) error {
	messageID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageService.MarkRead(c.Context(), messageID, currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Marked as read",
	})
}

// GetConversation handles GET /api/conversations/:userId
// @Summary Get the thread with one artist
// @Description Returns the full message thread with the counterpart; empty if they have never talked
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Counterpart user ID"
// @Success 200 {object} service.Conversation
// @Router /conversations/{userId} [get]
func (s *Server) GetConversation(c *fiber.Ctx) error {
	counterpartID, err := s.requireParam(c, "userId")
	if err != nil {
		return nil
	}

	conversation, err := s.messageService.ConversationWith(c.Context(), currentUserID(c), counterpartID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(conversation)
}

// MarkConversationRead handles POST /api/conversations/:userId/read
// @Summary Mark a conversation as read
// @Description Marks every unread message from the counterpart as read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Counterpart user ID"
// @Success 200 {object} object{message=string}
// @Router /conversations/{userId}/read [post]
func (s *Server) MarkConversationRead(c *fiber.Ctx) error {
	counterpartID, err := s.requireParam(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.messageService.MarkConversationRead(c.Context(), currentUserID(c), counterpartID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Conversation marked as read",
	})
}
