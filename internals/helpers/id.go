package helper

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var ErrInvalidID = errors.New("ID tidak valid")

// ParseID membaca path param :id sebagai integer positif.
func ParseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
