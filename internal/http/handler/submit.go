package handler

import (
	"github.com/gofiber/fiber/v2"

	"msgboard/internal/bridge"
	"msgboard/internal/http/middleware"
)

// Submit accepts the form POST, forwards the raw body over the bridge, and
// redirects the browser back to the form page. The body is passed on
// untouched — no content-type validation, no parsing. A forward failure is
// logged and swallowed: the redirect goes out regardless, since delivery is
// fire-and-forget end to end.
func Submit(sender bridge.Sender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := sender.Send(c.Body()); err != nil {
			rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
			logJSON(map[string]any{
				"level":      "error",
				"msg":        "udp_forward_failed",
				"request_id": rid,
				"error":      err.Error(),
			})
		}
		return c.Redirect("/message.html?status=ok", fiber.StatusSeeOther)
	}
}
