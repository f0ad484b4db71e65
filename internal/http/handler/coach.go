package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"coachapi/internal/service"
)

type startThreadRequest struct {
	Title string `json:"title"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// StartThread handles POST /users/:id/threads.
func StartThread(svc service.CoachService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req startThreadRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
			}
		}

		t, err := svc.StartThread(c.UserContext(), userID, req.Title)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

// ListThreads handles GET /users/:id/threads.
func ListThreads(svc service.CoachService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		limit, offset, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "invalid limit or offset")
		}

		res, err := svc.ListThreads(c.UserContext(), userID, limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// SendMessage handles POST /threads/:id/messages: one user turn plus the
// coach's canned reply.
func SendMessage(svc service.CoachService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		threadID := c.Params("id")
		if _, err := uuid.Parse(threadID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req sendMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		ex, err := svc.SendMessage(c.UserContext(), threadID, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMessageRequired):
				return writeError(c, fiber.StatusBadRequest, "CONTENT_REQUIRED", "message content is required")
			case errors.Is(err, service.ErrThreadNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "thread not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(ex)
	}
}

// GetHistory handles GET /threads/:id/messages.
func GetHistory(svc service.CoachService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		threadID := c.Params("id")
		if _, err := uuid.Parse(threadID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		limit, offset, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "invalid limit or offset")
		}

		res, err := svc.History(c.UserContext(), threadID, limit, offset)
		if err != nil {
			if errors.Is(err, service.ErrThreadNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "thread not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// pageParams parses limit/offset query params with defaults 10/0.
func pageParams(c *fiber.Ctx) (limit, offset int, ok bool) {
	var err error
	limit, err = strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, false
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, false
	}
	return limit, offset, true
}
