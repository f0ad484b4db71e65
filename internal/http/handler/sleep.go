package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"coachapi/internal/service"
)

// LogSleep handles POST /users/:id/sleep.
func LogSleep(svc service.SleepService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.LogSleepInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		s, err := svc.LogSession(c.UserContext(), userID, in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidSession):
				return writeError(c, fiber.StatusBadRequest, "INVALID_SESSION", "invalid sleep session")
			case errors.Is(err, service.ErrUserNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(s)
	}
}

// ListSleep handles GET /users/:id/sleep?days=N.
func ListSleep(svc service.SleepService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		days, ok := daysParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DAYS", "invalid days")
		}

		sessions, err := svc.Recent(c.UserContext(), userID, days)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": sessions, "total": len(sessions)})
	}
}

// GetSleepAnalysis handles GET /users/:id/sleep/analysis?days=N.
func GetSleepAnalysis(svc service.SleepService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		days, ok := daysParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DAYS", "invalid days")
		}

		analysis, err := svc.Analyze(c.UserContext(), userID, days)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(analysis)
	}
}

func daysParam(c *fiber.Ctx) (int, bool) {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days < 0 {
		return 0, false
	}
	return days, true
}
