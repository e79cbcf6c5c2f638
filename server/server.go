package server

import (
	"bytes"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Koliatoday/goit-algo-hw-04/internal/bench"
	"github.com/Koliatoday/goit-algo-hw-04/internal/plot"
)

// New builds the app serving a finished comparison: the interactive chart at /
// and the raw entries as JSON or msgpack.
func New(results []bench.Result) *fiber.App {
	app := fiber.New()

	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "Local",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := plot.Render(&buf, results); err != nil {
			log.Println("Error rendering chart:", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error rendering chart")
		}
		return c.Type("html").Send(buf.Bytes())
	})

	app.Get("/results.json", func(c *fiber.Ctx) error {
		return c.JSON(results)
	})

	app.Get("/results.msgpack", func(c *fiber.Ctx) error {
		encoded, err := msgpack.Marshal(results)
		if err != nil {
			log.Println("Error marshaling msgpack:", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error encoding results")
		}
		c.Set("Content-Type", "application/msgpack")
		return c.Send(encoded)
	})

	return app
}

// Serve blocks, serving the chart at addr until the process is stopped.
func Serve(addr string, results []bench.Result) error {
	log.Printf("Chart available at http://localhost%s", addr)
	return New(results).Listen(addr)
}
