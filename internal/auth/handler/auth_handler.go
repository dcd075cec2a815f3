package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/koobs97/BonsCore-sub000/internal/auth/dto"
	"github.com/koobs97/BonsCore-sub000/internal/auth/service"
	autherror "github.com/koobs97/BonsCore-sub000/internal/errors"
)

type AuthHandler struct {
	loginService *service.LoginService
	validate     *validator.Validate
}

func NewAuthHandler(loginService *service.LoginService) *AuthHandler {
	return &AuthHandler{
		loginService: loginService,
		validate:     validator.New(),
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	// Capture metadata. The country code is resolved by the edge geo layer
	// and forwarded as a header.
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())
	input.CountryCode = c.Get("X-Origin-Country")

	result, err := h.loginService.Login(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "login failed",
		})
	}

	return c.Status(statusForOutcome(result.Outcome)).JSON(result)
}

func statusForOutcome(outcome dto.LoginOutcome) int {
	switch outcome {
	case dto.OutcomeSuccess:
		return fiber.StatusOK
	case dto.OutcomeDuplicateLogin:
		return fiber.StatusConflict
	case dto.OutcomeInvalidCredentials:
		return fiber.StatusUnauthorized
	case dto.OutcomeBlocked:
		return fiber.StatusTooManyRequests
	case dto.OutcomeDormantHold:
		return fiber.StatusLocked
	case dto.OutcomeStepUpRequired:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	tokens, err := h.loginService.Refresh(c.Context(), input.RefreshToken)
	if err != nil {
		if errors.Is(err, autherror.ErrTokenRevoked) || errors.Is(err, autherror.ErrTokenExpired) ||
			errors.Is(err, autherror.ErrTokenMalformed) || errors.Is(err, autherror.ErrAccountNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "refresh failed"})
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := c.Locals(principalKey).(*dto.Principal)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var input dto.LogoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	// Only the session named by the bearer token may be torn down.
	if input.AccountID != "" && input.AccountID != principal.AccountID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}

	input.AccessToken = bearerToken(c)
	h.loginService.Logout(principal.AccountID, input.AccessToken, input.RefreshToken)

	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the principal attached by the auth middleware. Exists mostly so
// clients can check whether their session is still live.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := c.Locals(principalKey).(*dto.Principal)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	return c.Status(fiber.StatusOK).JSON(principal)
}
