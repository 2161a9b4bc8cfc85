// Package handlers provides HTTP request handling
package handlers

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/madenai/arqflow/internal/api/v1/middleware"
	"github.com/madenai/arqflow/internal/services"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	*APIHandler
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(api *APIHandler) *AuthHandler {
	return &AuthHandler{APIHandler: api}
}

// RegisterParams defines the parameters for creating an account
type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company,omitempty"`
}

// Validate validates the parameters for creating an account
func (p RegisterParams) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNameRequired))
	}
	if p.Email == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgEmailRequired))
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgInvalidUserEmail))
	}
	if p.Password == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgPasswordRequired))
	}
	if len(p.Password) < 8 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgPasswordTooShort))
	}
	return nil
}

// LoginParams defines the parameters for logging in
type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the parameters for logging in
func (p LoginParams) Validate() error {
	if p.Email == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgEmailRequired))
	}
	if p.Password == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgPasswordRequired))
	}
	return nil
}

// LoginResponse is the payload returned on a successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
}

// Register handles account creation
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var params RegisterParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidReqFormat)
	}

	if err := params.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := h.user.Register(c.Context(), params.Name, params.Email, params.Password, params.Company)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return fiber.NewError(fiber.StatusConflict, ErrMsgEmailTaken)
		}
		return fiber.NewError(fiber.StatusInternalServerError, ErrMsgRegisterFailed)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var params LoginParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidReqFormat)
	}

	if err := params.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session, err := h.user.Login(c.Context(), params.Email, params.Password, c.IP())
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, ErrMsgInvalidCreds)
	}

	return c.JSON(LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		UserID:    session.User.ID,
		Name:      session.User.Name,
		Role:      session.User.Role.String(),
	})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.user.GetUser(c.Context(), middleware.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, ErrMsgGetUserFailed)
	}
	return c.JSON(user)
}
