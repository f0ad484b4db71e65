package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"coachapi/internal/service"
)

type recommendRequest struct {
	Goal string `json:"goal"`
}

// LogWorkout handles POST /users/:id/workouts.
func LogWorkout(svc service.WorkoutService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.LogWorkoutInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		w, err := svc.LogWorkout(c.UserContext(), userID, in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidWorkout):
				return writeError(c, fiber.StatusBadRequest, "INVALID_WORKOUT", "invalid workout")
			case errors.Is(err, service.ErrUserNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(w)
	}
}

// ListWorkouts handles GET /users/:id/workouts.
func ListWorkouts(svc service.WorkoutService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		limit, offset, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "invalid limit or offset")
		}

		res, err := svc.List(c.UserContext(), userID, limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// RecommendWorkout handles POST /workouts/recommend. The mapping always
// answers; unmatched goals get the default plan.
func RecommendWorkout(svc service.WorkoutService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req recommendRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
			}
		}
		return c.JSON(svc.Recommend(req.Goal))
	}
}

// DeleteWorkout handles DELETE /workouts/:id.
func DeleteWorkout(svc service.WorkoutService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteWorkout(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrWorkoutNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "workout not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
