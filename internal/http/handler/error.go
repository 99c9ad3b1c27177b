package handler

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"msgboard/internal/site"
)

// ErrorHandler returns a Fiber global error handler that converts any error
// escaping a handler into the not-found response. The front door prefers a
// wrong-looking 404 over a crash, a 500, or a hung connection.
func ErrorHandler(s *site.Site) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logJSON(map[string]any{
			"level":  "error",
			"msg":    "request_failed",
			"method": c.Method(),
			"path":   c.Path(),
			"error":  err.Error(),
		})
		return notFound(c, s)
	}
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().Format(time.RFC3339Nano)
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal log entry: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
