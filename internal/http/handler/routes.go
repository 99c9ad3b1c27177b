package handler

import (
	"github.com/gofiber/fiber/v2"

	"msgboard/internal/bridge"
	"msgboard/internal/site"
)

// RegisterRoutes mounts the public route table on the provided Fiber app.
// Anything not listed here — unknown paths, unknown methods — falls through
// to the not-found page; the front door never answers with anything else.
func RegisterRoutes(app *fiber.App, s *site.Site, sender bridge.Sender) {
	app.Get("/", HomePage(s))
	app.Get("/index.html", HomePage(s))
	app.Get("/message", FormPage(s))
	app.Get("/message.html", FormPage(s))
	app.Get("/favicon.ico", Favicon(s))
	app.Get("/static/*", StaticAsset(s))
	app.Post("/submit", Submit(sender))

	// Terminal catch-all for every unmatched method+path pair.
	app.Use(NotFound(s))
}
