package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cyra-health/cyra/internal/models"
	"github.com/cyra-health/cyra/internal/services"
)

type credentialsInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

type profileInput struct {
	HeightCM              float64 `json:"height_cm" validate:"required,gt=0,lt=300"`
	FamilyHistoryDiabetes bool    `json:"family_history_diabetes"`
}

type userView struct {
	ID                    uint    `json:"id"`
	Email                 string  `json:"email"`
	HeightCM              float64 `json:"height_cm"`
	FamilyHistoryDiabetes bool    `json:"family_history_diabetes"`
	MustChangePassword    bool    `json:"must_change_password"`
}

func viewForUser(user *models.User) userView {
	return userView{
		ID:                    user.ID,
		Email:                 user.Email,
		HeightCM:              user.HeightCM,
		FamilyHistoryDiabetes: user.FamilyHistoryDiabetes,
		MustChangePassword:    user.MustChangePassword,
	}
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := handler.parsePayload(c, &input); err != nil {
		return err
	}

	user, err := handler.authService.Register(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already registered")
		case errors.Is(err, services.ErrWeakPassword), errors.Is(err, services.ErrAuthCredentialsInvalid):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to register")
		}
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  viewForUser(&user),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey, time.Now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	var input credentialsInput
	if err := handler.parsePayload(c, &input); err != nil {
		return err
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		handler.loginLimiter.recordFailure(limiterKey, time.Now())
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	handler.loginLimiter.clear(limiterKey)

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  viewForUser(&user),
	})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input changePasswordInput
	if err := handler.parsePayload(c, &input); err != nil {
		return err
	}

	if err := handler.authService.ChangePassword(user, input.CurrentPassword, input.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return apiError(c, fiber.StatusUnauthorized, "current password is incorrect")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to change password")
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(viewForUser(user))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input profileInput
	if err := handler.parsePayload(c, &input); err != nil {
		return err
	}

	user.HeightCM = input.HeightCM
	user.FamilyHistoryDiabetes = input.FamilyHistoryDiabetes
	if err := handler.authService.SaveUser(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
	return c.JSON(viewForUser(user))
}
