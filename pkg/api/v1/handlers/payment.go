// Package handlers provides HTTP request handling
package handlers

import (
	"errors"
	"fmt"
	"strings"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/madenai/arqflow/internal/api/v1/middleware"
	"github.com/madenai/arqflow/internal/db/models"
	"github.com/madenai/arqflow/internal/services"
	"github.com/madenai/arqflow/internal/types"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	*APIHandler
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(api *APIHandler) *PaymentHandler {
	return &PaymentHandler{APIHandler: api}
}

// PaymentCreateParams defines the parameters for submitting a charge
type PaymentCreateParams struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Validate validates the parameters for submitting a charge
func (p PaymentCreateParams) Validate() error {
	if p.Amount <= 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgPaymentAmountInvalid))
	}
	return nil
}

// CreatePayment handles submitting a charge for the authenticated user
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var params PaymentCreateParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidReqFormat)
	}

	if err := params.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := h.user.GetUser(c.Context(), middleware.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, ErrMsgGetUserFailed)
	}

	payment, err := h.payment.Charge(c.Context(), user, params.Amount, params.Description)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPaymentAmount) {
			return fiber.NewError(fiber.StatusBadRequest, ErrMsgPaymentAmountInvalid)
		}
		// A rejected charge still carries its record; surface it with the error.
		if payment != nil {
			return c.Status(fiber.StatusPaymentRequired).JSON(payment)
		}
		return fiber.NewError(fiber.StatusInternalServerError, ErrMsgPaymentFailed)
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

// GetSubscription returns the caller's subscription, creating the default
// free plan on first access
func (h *PaymentHandler) GetSubscription(c *fiber.Ctx) error {
	sub, err := h.admin.GetSubscription(c.Context(), middleware.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get subscription")
	}
	return c.JSON(sub)
}

// GetPayment handles retrieving one of the caller's payments by ID
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment id")
	}

	payment, err := h.payment.GetPayment(c.Context(), middleware.UserID(c), uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, ErrMsgPaymentNotFound)
	}
	return c.JSON(payment)
}

// ListPayments handles listing the caller's payments with pagination
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgNegativePagination)
	}

	listOpts := getPaginationOptions(page)
	payments, err := h.payment.ListPayments(c.Context(), middleware.UserID(c), listOpts)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, ErrMsgPaymentListFailed)
	}

	return c.JSON(types.ListResponse[models.Payment]{
		Rows: payments,
		Pagination: types.PaginationResponse{
			Total:  len(payments),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	})
}
