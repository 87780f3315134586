package web

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// IntParam parses an optional integer query parameter. A missing parameter
// returns nil.
func IntParam(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: not an integer: %q", name, raw)
	}
	return &v, nil
}

// FloatParam parses an optional float query parameter. A missing parameter
// returns nil.
func FloatParam(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: not a number: %q", name, raw)
	}
	return &v, nil
}
