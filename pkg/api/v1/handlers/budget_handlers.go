// Package handlers provides HTTP request handling
package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/madenai/arqflow/internal/estimator"
	"github.com/madenai/arqflow/internal/services"
)

// GenerateBudget handles deriving a fresh budget for a project
func GenerateBudget(h *RPCHandler, c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	params, err := parseParams[BudgetGenerateParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	budget, err := h.budget.Generate(c.Context(), ownerID, params.ProjectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgProjNotFound, err.Error(), req.ID)
		}
		return respondWithRPCError(c, fiber.StatusInternalServerError, ErrMsgBudgGenerateFailed, err.Error(), req.ID)
	}

	return c.JSON(RPCResponse{
		Data:    budget,
		Success: true,
		ID:      req.ID,
	})
}

// GetBudget handles retrieving the stored budget of a project
func GetBudget(h *RPCHandler, c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	params, err := parseParams[BudgetGetParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	budget, err := h.budget.Get(c.Context(), ownerID, params.ProjectID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgProjNotFound, err.Error(), req.ID)
		case errors.Is(err, services.ErrBudgetNotGenerated):
			return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgBudgNotGenerated, nil, req.ID)
		default:
			return respondWithRPCError(c, fiber.StatusInternalServerError, ErrMsgBudgGetFailed, err.Error(), req.ID)
		}
	}

	return c.JSON(RPCResponse{
		Data:    budget,
		Success: true,
		ID:      req.ID,
	})
}

// UpdateBudgetItem handles editing one budget line
func UpdateBudgetItem(h *RPCHandler, c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	params, err := parseParams[BudgetUpdateItemParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	patch := estimator.BudgetItemPatch{
		Environment: params.Environment,
		Material:    params.Material,
		Quantity:    params.Quantity,
		UnitPrice:   params.UnitPrice,
	}
	if params.Unit != nil {
		unit := estimator.Unit(*params.Unit)
		patch.Unit = &unit
	}

	budget, err := h.budget.UpdateItem(c.Context(), ownerID, params.ProjectID, params.ItemID, patch)
	if err != nil {
		return respondWithBudgetEditError(c, err, req.ID)
	}

	return c.JSON(RPCResponse{
		Data:    budget,
		Success: true,
		ID:      req.ID,
	})
}

// AddBudgetItem handles appending a user-defined budget line
func AddBudgetItem(h *RPCHandler, c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	params, err := parseParams[BudgetAddItemParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	item := estimator.BudgetItem{
		Environment: params.Environment,
		Material:    params.Material,
		Quantity:    params.Quantity,
		Unit:        estimator.Unit(params.Unit),
		UnitPrice:   params.UnitPrice,
	}

	budget, err := h.budget.AddItem(c.Context(), ownerID, params.ProjectID, item)
	if err != nil {
		return respondWithBudgetEditError(c, err, req.ID)
	}

	return c.JSON(RPCResponse{
		Data:    budget,
		Success: true,
		ID:      req.ID,
	})
}

// RemoveBudgetItem handles removing a budget line
func RemoveBudgetItem(h *RPCHandler, c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	params, err := parseParams[BudgetRemoveItemParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	budget, err := h.budget.RemoveItem(c.Context(), ownerID, params.ProjectID, params.ItemID)
	if err != nil {
		return respondWithBudgetEditError(c, err, req.ID)
	}

	return c.JSON(RPCResponse{
		Data:    budget,
		Success: true,
		ID:      req.ID,
	})
}

// respondWithBudgetEditError maps budget edit failures onto RPC errors
func respondWithBudgetEditError(c *fiber.Ctx, err error, reqID string) error {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgProjNotFound, err.Error(), reqID)
	case errors.Is(err, services.ErrBudgetNotGenerated):
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgBudgNotGenerated, nil, reqID)
	case errors.Is(err, services.ErrBudgetItemNotFound):
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgBudgItemNotFound, nil, reqID)
	default:
		return respondWithRPCError(c, fiber.StatusInternalServerError, ErrMsgBudgUpdateFailed, err.Error(), reqID)
	}
}
