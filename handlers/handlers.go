package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SrChaoz/financeApp-sub000/config"
	"github.com/SrChaoz/financeApp-sub000/engine"
)

// localsUserID is the fiber locals key the auth middleware fills in.
const localsUserID = "userID"

var (
	jwtSecret    string
	tokenTTL     time.Duration
	geminiAPIKey string
)

// Configure wires the handler package to the loaded configuration. Must be
// called before any route is served.
func Configure(cfg *config.Config) {
	jwtSecret = cfg.JWTSecret
	tokenTTL = cfg.TokenTTL
	geminiAPIKey = cfg.GeminiAPIKey
}

// currentUserID returns the authenticated user's id, or uuid.Nil when the
// middleware did not run.
func currentUserID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(localsUserID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// idParam parses the :id route parameter.
func idParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, engine.InvalidInput("invalid id")
	}
	return id, nil
}

// renderError maps engine error kinds and ORM lookups onto HTTP statuses.
// Cross-user access surfaces as 404, identical to a missing row.
func renderError(c *fiber.Ctx, err error) error {
	var e *engine.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case engine.KindNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": e.Message})
		case engine.KindInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": e.Message})
		case engine.KindAlreadyCompleted:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": e.Message})
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// parseDateBound parses an ISO-8601 date or timestamp query value. A
// date-only end bound is pushed to the last instant of that day so rows
// dated anywhere on the end date stay inside the inclusive range.
func parseDateBound(s string, end bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, engine.InvalidInput("invalid date: " + s)
	}
	if end {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
