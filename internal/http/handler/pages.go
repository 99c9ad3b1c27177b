package handler

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"msgboard/internal/site"
)

// HomePage serves templates/index.html.
func HomePage(s *site.Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return sendPage(c, s, "index.html", fiber.StatusOK)
	}
}

// FormPage serves templates/message.html, the submission form.
func FormPage(s *site.Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return sendPage(c, s, "message.html", fiber.StatusOK)
	}
}

// Favicon serves static/favicon.ico when present. The favicon path is fixed,
// so it goes through a bare existence check rather than the static resolver.
func Favicon(s *site.Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path, ok := s.FaviconPath()
		if !ok {
			return notFound(c, s)
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return notFound(c, s)
		}
		return sendBytes(c, fiber.StatusOK, site.ContentTypeFor(path), body)
	}
}

// StaticAsset serves files under the static root through the traversal-safe
// resolver. Any rejection — escape, missing file, directory — is a 404.
func StaticAsset(s *site.Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, ct, err := s.ReadStatic(c.Params("*"))
		if err != nil {
			return notFound(c, s)
		}
		return sendBytes(c, fiber.StatusOK, ct, body)
	}
}

func sendPage(c *fiber.Ctx, s *site.Site, name string, status int) error {
	body, err := s.Page(name)
	if err != nil {
		return notFound(c, s)
	}
	return sendBytes(c, status, "text/html; charset=utf-8", body)
}

// sendBytes writes a fully-buffered response with an explicit length header
// matching the exact byte count written.
func sendBytes(c *fiber.Ctx, status int, contentType string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(body)))
	return c.Status(status).Send(body)
}
