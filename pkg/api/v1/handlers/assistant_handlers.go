// Package handlers provides HTTP request handling
package handlers

import (
	"errors"
	"fmt"
	"strings"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/madenai/arqflow/internal/services"
)

// AssistantChatParams defines the parameters for a project-scoped chat message
type AssistantChatParams struct {
	ProjectID uint   `json:"project_id"`
	Message   string `json:"message"`
}

// Validate validates the parameters for a chat message
func (p AssistantChatParams) Validate() error {
	if p.ProjectID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjIDRequired))
	}
	if strings.TrimSpace(p.Message) == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgAsstMessageRequired))
	}
	return nil
}

// AssistantChatHandler handles a chat message scoped to one of the caller's
// projects
func AssistantChatHandler(h *RPCHandler, c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	params, err := parseParams[AssistantChatParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	reply, err := h.assistant.Chat(c.Context(), ownerID, params.ProjectID, params.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgProjNotFound, err.Error(), req.ID)
		case errors.Is(err, services.ErrAIQuotaExceeded):
			return respondWithRPCError(c, fiber.StatusTooManyRequests, ErrMsgAsstQuotaExceeded, nil, req.ID)
		default:
			return respondWithRPCError(c, fiber.StatusInternalServerError, ErrMsgAsstChatFailed, err.Error(), req.ID)
		}
	}

	return c.JSON(RPCResponse{
		Data:    reply,
		Success: true,
		ID:      req.ID,
	})
}
