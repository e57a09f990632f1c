package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyra-health/cyra/internal/chat"
	"github.com/cyra-health/cyra/internal/models"
)

const chatHistoryLimit = 40

type chatInput struct {
	Question string `json:"question" validate:"required,max=4000"`
}

type chatMessageView struct {
	ID        uint   `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func viewForChatMessage(message models.ChatMessage) chatMessageView {
	return chatMessageView{
		ID:        message.ID,
		Role:      message.Role,
		Content:   message.Content,
		CreatedAt: message.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// AskAssistant relays the question with recent conversation context and
// stores both sides of the exchange.
func (handler *Handler) AskAssistant(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.assistant == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "assistant is not configured")
	}

	var input chatInput
	if err := handler.parsePayload(c, &input); err != nil {
		return err
	}

	stored, err := handler.repositories.Chats.ListByUser(user.ID, chatHistoryLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load conversation")
	}
	history := make([]chat.Message, 0, len(stored))
	for _, message := range stored {
		history = append(history, chat.Message{Role: message.Role, Content: message.Content})
	}

	answer, err := handler.assistant.Ask(c.UserContext(), history, input.Question)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "assistant is unavailable")
	}

	question := models.ChatMessage{UserID: user.ID, Role: models.ChatRoleUser, Content: input.Question}
	if err := handler.repositories.Chats.Create(&question); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store conversation")
	}
	reply := models.ChatMessage{UserID: user.ID, Role: models.ChatRoleAssistant, Content: answer}
	if err := handler.repositories.Chats.Create(&reply); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store conversation")
	}

	return c.JSON(fiber.Map{
		"question": viewForChatMessage(question),
		"answer":   viewForChatMessage(reply),
	})
}

func (handler *Handler) GetChatHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	messages, err := handler.repositories.Chats.ListByUser(user.ID, chatHistoryLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load conversation")
	}

	views := make([]chatMessageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, viewForChatMessage(message))
	}
	return c.JSON(fiber.Map{"messages": views})
}
