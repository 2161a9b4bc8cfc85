// Package handlers provides HTTP request handling
package handlers

import (
	"errors"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/madenai/arqflow/internal/estimator"
	"github.com/madenai/arqflow/internal/services"
)

// ScheduleResponse decorates the derived schedule with its critical path for
// the Gantt view.
type ScheduleResponse struct {
	*estimator.Schedule
	CriticalPath []string `json:"critical_path"`
}

func newScheduleResponse(s *estimator.Schedule) ScheduleResponse {
	return ScheduleResponse{Schedule: s, CriticalPath: s.CriticalPath()}
}

// GenerateSchedule handles deriving a fresh schedule for a project
func GenerateSchedule(h *RPCHandler, c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	params, err := parseParams[ScheduleGenerateParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	schedule, err := h.schedule.Generate(c.Context(), ownerID, params.ProjectID, params.Start())
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgProjNotFound, err.Error(), req.ID)
		}
		return respondWithRPCError(c, fiber.StatusInternalServerError, ErrMsgSchedGenerateFailed, err.Error(), req.ID)
	}

	return c.JSON(RPCResponse{
		Data:    newScheduleResponse(schedule),
		Success: true,
		ID:      req.ID,
	})
}

// GetSchedule handles retrieving the stored schedule of a project
func GetSchedule(h *RPCHandler, c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	params, err := parseParams[ScheduleGetParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	schedule, err := h.schedule.Get(c.Context(), ownerID, params.ProjectID)
	if err != nil {
		return respondWithScheduleEditError(c, err, req.ID)
	}

	return c.JSON(RPCResponse{
		Data:    newScheduleResponse(schedule),
		Success: true,
		ID:      req.ID,
	})
}

// UpdateScheduleTask handles editing one schedule task
func UpdateScheduleTask(h *RPCHandler, c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	params, err := parseParams[ScheduleUpdateTaskParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	patch := estimator.TaskPatch{
		Name:     params.Name,
		Category: params.Category,
		Color:    params.Color,
		Duration: params.Duration,
		Cost:     params.Cost,
	}
	if params.StartDate != nil {
		start, _ := time.Parse(dateLayout, *params.StartDate)
		patch.StartDate = &start
	}
	if params.Status != nil {
		status := estimator.TaskStatus(*params.Status)
		patch.Status = &status
	}

	schedule, err := h.schedule.UpdateTask(c.Context(), ownerID, params.ProjectID, params.TaskID, patch)
	if err != nil {
		return respondWithScheduleEditError(c, err, req.ID)
	}

	return c.JSON(RPCResponse{
		Data:    newScheduleResponse(schedule),
		Success: true,
		ID:      req.ID,
	})
}

// AddScheduleTask handles appending a task to the end of the chain
func AddScheduleTask(h *RPCHandler, c *fiber.Ctx, ownerID uint, req RPCRequest) error {
	params, err := parseParams[ScheduleAddTaskParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	task := estimator.ScheduleTask{
		Name:     params.Name,
		Category: params.Category,
		Color:    params.Color,
		Duration: params.Duration,
		Cost:     params.Cost,
	}

	schedule, err := h.schedule.AddTask(c.Context(), ownerID, params.ProjectID, task)
	if err != nil {
		return respondWithScheduleEditError(c, err, req.ID)
	}

	return c.JSON(RPCResponse{
		Data:    newScheduleResponse(schedule),
		Success: true,
		ID:      req.ID,
	})
}

// respondWithScheduleEditError maps schedule failures onto RPC errors
func respondWithScheduleEditError(c *fiber.Ctx, err error, reqID string) error {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgProjNotFound, err.Error(), reqID)
	case errors.Is(err, services.ErrScheduleNotGenerated):
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgSchedNotGenerated, nil, reqID)
	case errors.Is(err, services.ErrScheduleTaskNotFound):
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgSchedTaskNotFound, nil, reqID)
	default:
		return respondWithRPCError(c, fiber.StatusInternalServerError, ErrMsgSchedUpdateFailed, err.Error(), reqID)
	}
}
