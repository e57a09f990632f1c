package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (handler *Handler) parsePayload(c *fiber.Ctx, payload any) error {
	if err := c.BodyParser(payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := handler.validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return apiError(c, fiber.StatusBadRequest, describeValidationError(validationErrors[0]))
		}
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	return nil
}

func describeValidationError(fieldError validator.FieldError) string {
	field := strings.ToLower(fieldError.Field())
	switch fieldError.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fieldError.Param()
	case "max":
		return field + " must be at most " + fieldError.Param()
	case "oneof":
		return field + " must be one of: " + fieldError.Param()
	default:
		return field + " is invalid"
	}
}

func (handler *Handler) parseDateParam(value string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(value), handler.location)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}

func formatDay(value time.Time) string {
	return value.Format(dateLayout)
}

func formatOptionalDay(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}
