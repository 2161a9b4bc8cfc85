// Package handlers provides HTTP request handling
package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/madenai/arqflow/internal/db/models"
	"github.com/madenai/arqflow/internal/types"
)

// AdminHandler handles HTTP requests for the admin panel
type AdminHandler struct {
	*APIHandler
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(api *APIHandler) *AdminHandler {
	return &AdminHandler{APIHandler: api}
}

// GetMetrics returns the dashboard snapshot: user and project counts,
// approved revenue, plan distribution, and assistant usage per operation.
func (h *AdminHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.admin.Metrics(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, ErrMsgMetricsFailed)
	}
	return c.JSON(metrics)
}

// ListUsers returns all accounts with pagination
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgNegativePagination)
	}

	listOpts := getPaginationOptions(page)
	users, err := h.user.GetAllUsers(c.Context(), listOpts)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, ErrMsgGetUsersFailed)
	}

	return c.JSON(types.ListResponse[models.User]{
		Rows: users,
		Pagination: types.PaginationResponse{
			Total:  len(users),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	})
}

// DeleteUser removes an account
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidUserID)
	}

	if _, err := h.user.GetUser(c.Context(), uint(id)); err != nil {
		return fiber.NewError(fiber.StatusNotFound, ErrMsgUserNotFoundByID)
	}
	if err := h.user.DeleteUser(c.Context(), uint(id)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, ErrMsgDeleteUserFailed)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// GetUsageReport returns assistant token usage aggregated per operation
func (h *AdminHandler) GetUsageReport(c *fiber.Ctx) error {
	usage, err := h.admin.UsageReport(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, ErrMsgUsageReportFailed)
	}
	return c.JSON(usage)
}

// AlertCreateParams defines the parameters for recording an alert
type AlertCreateParams struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Source   string `json:"source,omitempty"`
}

// Validate validates the parameters for recording an alert
func (p AlertCreateParams) Validate() error {
	if p.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgAlertMsgRequired)
	}
	switch models.AlertSeverity(p.Severity) {
	case models.AlertInfo, models.AlertWarning, models.AlertCritical:
		return nil
	default:
		return fiber.NewError(fiber.StatusBadRequest, "invalid alert severity")
	}
}

// CreateAlert records an operational alert
func (h *AdminHandler) CreateAlert(c *fiber.Ctx) error {
	var params AlertCreateParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidReqFormat)
	}

	if err := params.Validate(); err != nil {
		return err
	}

	alert := models.Alert{
		Severity: models.AlertSeverity(params.Severity),
		Message:  params.Message,
		Source:   params.Source,
	}
	if err := h.admin.CreateAlert(c.Context(), &alert); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, ErrMsgAlertCreateFailed)
	}
	return c.Status(fiber.StatusCreated).JSON(alert)
}

// ListAlerts returns alerts, unacknowledged first
func (h *AdminHandler) ListAlerts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgNegativePagination)
	}

	listOpts := getPaginationOptions(page)
	alerts, err := h.admin.ListAlerts(c.Context(), listOpts)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, ErrMsgAlertsFailed)
	}

	return c.JSON(types.ListResponse[models.Alert]{
		Rows: alerts,
		Pagination: types.PaginationResponse{
			Total:  len(alerts),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	})
}

// AcknowledgeAlert marks an alert as handled
func (h *AdminHandler) AcknowledgeAlert(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidAlertID)
	}

	if err := h.admin.AcknowledgeAlert(c.Context(), uint(id)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, ErrMsgAlertAckFailed)
	}
	return c.JSON(fiber.Map{"acknowledged": true})
}

// GetUserSubscription returns a user's subscription, creating the free plan
// on first access
func (h *AdminHandler) GetUserSubscription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidUserID)
	}

	sub, err := h.admin.GetSubscription(c.Context(), uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get subscription")
	}
	return c.JSON(sub)
}

// SubscriptionUpdateParams defines the parameters for changing a user's plan
type SubscriptionUpdateParams struct {
	Plan    string `json:"plan"`
	Status  string `json:"status,omitempty"`
	AIQuota *int   `json:"ai_quota,omitempty"`
}

// Validate validates the parameters for changing a plan
func (p SubscriptionUpdateParams) Validate() error {
	switch models.SubscriptionPlan(p.Plan) {
	case models.PlanFree, models.PlanPro, models.PlanEnterprise:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "invalid subscription plan")
	}
	if p.Status != "" {
		switch models.SubscriptionStatus(p.Status) {
		case models.SubscriptionActive, models.SubscriptionPastDue, models.SubscriptionCanceled:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "invalid subscription status")
		}
	}
	if p.AIQuota != nil && *p.AIQuota < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ai quota must not be negative")
	}
	return nil
}

// UpdateUserSubscription changes a user's plan
func (h *AdminHandler) UpdateUserSubscription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidUserID)
	}

	var params SubscriptionUpdateParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidReqFormat)
	}

	if err := params.Validate(); err != nil {
		return err
	}

	sub, err := h.admin.GetSubscription(c.Context(), uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get subscription")
	}

	sub.Plan = models.SubscriptionPlan(params.Plan)
	if params.Status != "" {
		sub.Status = models.SubscriptionStatus(params.Status)
	}
	if params.AIQuota != nil {
		sub.AIQuota = *params.AIQuota
	}

	if err := h.admin.UpdateSubscription(c.Context(), sub); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update subscription")
	}
	return c.JSON(sub)
}
