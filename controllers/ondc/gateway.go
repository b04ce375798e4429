// Package ondc exposes the Open Network for Digital Commerce passthrough
// surface. Requests are relayed verbatim to the configured downstream
// participant; no ONDC semantics live in this service.
package ondc

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Actions lists the ONDC calls the gateway will forward.
var Actions = []string{"search", "select", "init", "confirm", "status", "cancel", "update"}

// ValidAction reports whether action is part of the forwarded surface.
func ValidAction(action string) bool {
	for _, a := range Actions {
		if a == action {
			return true
		}
	}
	return false
}

// Forward relays the request body to the downstream gateway and returns its
// reply as-is. A missing or unreachable downstream yields a 502 with a JSON
// body rather than an opaque failure.
func Forward(c *fiber.Ctx) error {
	action := c.Params("action")
	if !ValidAction(action) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown ONDC action",
		})
	}

	baseURL := os.Getenv("ONDC_GATEWAY_URL")
	if baseURL == "" {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "ONDC gateway is not configured",
		})
	}

	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.Header.SetMethod(fiber.MethodPost)
	req.SetRequestURI(baseURL + "/" + action)
	req.Header.SetContentType(fiber.MIMEApplicationJSON)
	req.SetBody(c.Body())
	agent.Timeout(15 * time.Second)

	if err := agent.Parse(); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to reach ONDC gateway",
		})
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to reach ONDC gateway",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(code).Send(body)
}
