// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type signupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password"`
	Image     string `json:"image"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
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

// Signup handles the profile registration request. A duplicate email is a
// signalled outcome, not an error.
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), usecase.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Image:     req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Created {
		return response.Signal(c, http.StatusOK, "Email already registered")
	}

	return response.Success(c, http.StatusCreated, "Signed up successfully", nil)
}

// Login handles the login request. An unregistered email answers with a
// signal so the frontend can steer the user to signup.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrProfileNotFound) {
			return response.Signal(c, http.StatusOK, "Email is not registered/Please signup")
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "login is successful", view)
}

// ListUsers handles the admin listing of all profiles.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	views, err := h.uc.ListProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Users retrieved successfully", views)
}
