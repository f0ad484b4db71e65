package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"coachapi/internal/service"
)

// LogMeal handles POST /users/:id/meals.
func LogMeal(svc service.NutritionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.LogMealInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		m, err := svc.LogMeal(c.UserContext(), userID, in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidMeal):
				return writeError(c, fiber.StatusBadRequest, "INVALID_MEAL", "invalid meal")
			case errors.Is(err, service.ErrUserNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// ListMeals handles GET /users/:id/meals?date=YYYY-MM-DD.
func ListMeals(svc service.NutritionService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		meals, err := svc.MealsForDay(c.UserContext(), userID, c.Query("date"), loc)
		if err != nil {
			if errors.Is(err, service.ErrInvalidDate) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": meals, "total": len(meals)})
	}
}

// GetDailySummary handles GET /users/:id/nutrition/summary?date=YYYY-MM-DD.
func GetDailySummary(svc service.NutritionService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		summary, err := svc.DailySummary(c.UserContext(), userID, c.Query("date"), loc)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidDate):
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
			case errors.Is(err, service.ErrUserNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(summary)
	}
}

// DeleteMeal handles DELETE /meals/:id.
func DeleteMeal(svc service.NutritionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteMeal(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrMealNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "meal not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
