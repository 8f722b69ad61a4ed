// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/usecase"
)

// RegisterRequest is the wire DTO for the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the wire DTO for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Missing required fields")
	}

	input := &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Type:     req.Type,
		Password: req.Password,
	}

	if _, err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	// Never echo credential material back in the response.
	return response.Success(c, http.StatusCreated, "User created successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Missing required fields")
	}

	input := &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}

	if _, err := h.uc.Login(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Service is healthy")
}
