package handler

import (
	"github.com/gofiber/fiber/v2"

	"msgboard/internal/site"
)

// NotFound is the terminal handler for unmatched routes.
func NotFound(s *site.Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return notFound(c, s)
	}
}

// notFound renders the error page with a 404 status, falling back to a fixed
// plain-text body when the page itself cannot be read. It always produces a
// response; a missing template must never leave a request unanswered.
func notFound(c *fiber.Ctx, s *site.Site) error {
	if body, err := s.Page("error.html"); err == nil {
		return sendBytes(c, fiber.StatusNotFound, "text/html; charset=utf-8", body)
	}
	return sendBytes(c, fiber.StatusNotFound, "text/plain; charset=utf-8", []byte("404 Not Found"))
}
