package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
)

// idParam reads the positive integer :id route parameter.
func idParam(c fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
