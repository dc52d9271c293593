package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/api/dto"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/auth"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/service"
	"github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// AuthHandler exposes the credential lifecycle endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Me handles GET /auth/me for the authenticated user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	user, accounts, err := h.auth.Profile(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewProfileResponse(user, accounts)))
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	userID, err := h.auth.Signup(c.UserContext(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(util.OkMessage(
		fiber.Map{"user_id": userID},
		"account created; check your email to verify your address",
	))
}

// Signin handles POST /auth/signin.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.auth.Signin(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(util.Ok(fiber.Map{
		"user": dto.NewUserResponse(result.User),
		"auth": dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt},
	}))
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.auth.ForgotPassword(c.UserContext(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(util.OkMessage(nil, message))
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.auth.ResetPassword(c.UserContext(), req.Email, req.Token, req.Password); err != nil {
		return err
	}
	return c.JSON(util.OkMessage(nil, "password updated; sign in with your new password"))
}

// VerifyEmail handles POST /auth/verify-email.
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.auth.VerifyEmail(c.UserContext(), req.Token); err != nil {
		return err
	}
	return c.JSON(util.OkMessage(nil, "email verified"))
}
