// Package handlers provides HTTP request handling
package handlers

import (
	"encoding/json"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/madenai/arqflow/internal/api/v1/middleware"
)

// RPCRequest defines the structure for RPC-style API requests
type RPCRequest struct {
	// Method is the operation to perform (e.g., "project.create", "budget.generate")
	Method string `json:"method"`

	// Params contains the operation parameters
	Params interface{} `json:"params"`

	// ID is an optional request identifier that will be echoed back in the response
	ID string `json:"id,omitempty"`
}

// RPCResponse defines the structure for RPC-style API responses
type RPCResponse struct {
	// Data contains the operation result
	Data interface{} `json:"data,omitempty"`

	// Error contains error information if the operation failed
	Error *RPCError `json:"error,omitempty"`

	// ID echoes back the request ID if provided
	ID string `json:"id,omitempty"`

	// Success indicates if the operation was successful
	Success bool `json:"success"`
}

// RPCError defines the structure for RPC errors
type RPCError struct {
	// Code is a numeric error code
	Code int `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Data contains additional error details (optional)
	Data interface{} `json:"data,omitempty"`
}

// RPCHandler handles RPC-style API requests for projects, budgets, schedules,
// and the assistant. The owner ID is taken from the authenticated identity
// set by the auth middleware; params never carry it.
type RPCHandler struct {
	*APIHandler
}

// NewRPCHandler creates a new RPC handler backed by the API handler's services.
func NewRPCHandler(api *APIHandler) *RPCHandler {
	return &RPCHandler{APIHandler: api}
}

// HandleRPC handles all RPC requests for various resource types
func (h *RPCHandler) HandleRPC(c *fiber.Ctx) error {
	var req RPCRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidReqFormat, err.Error(), req.ID)
	}

	// Check if method is provided
	if req.Method == "" {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgMethodRequired, nil, req.ID)
	}

	ownerID := middleware.UserID(c)
	if ownerID == 0 {
		return respondWithRPCError(c, fiber.StatusUnauthorized, "Authentication required", nil, req.ID)
	}

	// Route to appropriate handler based on method prefix
	switch {
	case IsProjectMethod(req.Method):
		return h.handleProjectMethod(c, ownerID, req)
	case IsBudgetMethod(req.Method):
		return h.handleBudgetMethod(c, ownerID, req)
	case IsScheduleMethod(req.Method):
		return h.handleScheduleMethod(c, ownerID, req)
	case IsAssistantMethod(req.Method):
		return h.handleAssistantMethod(c, ownerID, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownMethod, nil, req.ID)
	}
}

// handleProjectMethod routes project methods to their respective handlers
func (h *RPCHandler) handleProjectMethod(c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	switch req.Method {
	case ProjectCreate:
		return CreateProject(h, c, ownerID, req)
	case ProjectGet:
		return GetProject(h, c, ownerID, req)
	case ProjectList:
		return ListProjects(h, c, ownerID, req)
	case ProjectDelete:
		return DeleteProject(h, c, ownerID, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownProjMethod, nil, req.ID)
	}
}

// handleBudgetMethod routes budget methods to their respective handlers
func (h *RPCHandler) handleBudgetMethod(c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	switch req.Method {
	case BudgetGenerate:
		return GenerateBudget(h, c, ownerID, req)
	case BudgetGet:
		return GetBudget(h, c, ownerID, req)
	case BudgetUpdateItem:
		return UpdateBudgetItem(h, c, ownerID, req)
	case BudgetAddItem:
		return AddBudgetItem(h, c, ownerID, req)
	case BudgetRemoveItem:
		return RemoveBudgetItem(h, c, ownerID, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownBudgMethod, nil, req.ID)
	}
}

// handleScheduleMethod routes schedule methods to their respective handlers
func (h *RPCHandler) handleScheduleMethod(c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	switch req.Method {
	case ScheduleGenerate:
		return GenerateSchedule(h, c, ownerID, req)
	case ScheduleGet:
		return GetSchedule(h, c, ownerID, req)
	case ScheduleUpdateTask:
		return UpdateScheduleTask(h, c, ownerID, req)
	case ScheduleAddTask:
		return AddScheduleTask(h, c, ownerID, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownSchedMethod, nil, req.ID)
	}
}

// handleAssistantMethod routes assistant methods to their respective handlers
func (h *RPCHandler) handleAssistantMethod(c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	switch req.Method {
	case AssistantChat:
		return AssistantChatHandler(h, c, ownerID, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownAsstMethod, nil, req.ID)
	}
}

// parseParams is a helper function to parse RPC parameters into a specific struct type
func parseParams[T any](req RPCRequest) (T, error) {
	var params T

	// Convert params to JSON
	paramsJSON, err := json.Marshal(req.Params)
	if err != nil {
		return params, err
	}

	// Unmarshal to target type
	if err := json.Unmarshal(paramsJSON, &params); err != nil {
		return params, err
	}

	return params, nil
}

// Helper to create a standardized RPC error response
func respondWithRPCError(c *fiber.Ctx, httpCode int, message string, data interface{}, id string) error {
	return c.Status(httpCode).JSON(RPCResponse{
		Error: &RPCError{
			Code:    httpCode,
			Message: message,
			Data:    data,
		},
		Success: false,
		ID:      id,
	})
}
