package helper

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var ErrInvalidID = errors.New("invalid id")

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *fiber.Ctx, key string) (int64, error) {
	raw := strings.TrimSpace(c.Params(key))
	if raw == "" {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// QueryOrForm returns the query-string value of key, falling back to the
// request body form value for POST submissions. Values are returned as sent;
// only the empty string counts as absent.
func QueryOrForm(c *fiber.Ctx, key string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	if c.Method() == fiber.MethodPost {
		return c.FormValue(key)
	}
	return ""
}
