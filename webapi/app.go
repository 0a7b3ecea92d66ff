package webapi

import (
	"errors"
	"time"

	_ "github.com/amirasaad/atm/cmd/server/swagger"
	"github.com/amirasaad/atm/pkg/config"
	accountsvc "github.com/amirasaad/atm/pkg/service/account"
	"github.com/amirasaad/atm/webapi/account"
	"github.com/amirasaad/atm/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// NewApp builds the fiber app with rate limiting, panic recovery, the API
// docs under /swagger and the account routes.
func NewApp(svc *accountsvc.Service, cfg *config.App) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default to 500 if status code cannot be determined
			status := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})
	app.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	maxRequests, window := 5, time.Second
	if cfg != nil && cfg.RateLimit != nil {
		maxRequests, window = cfg.RateLimit.MaxRequests, cfg.RateLimit.Window
	}
	app.Use(limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ATM is working! 🏧")
	})

	account.Routes(app, svc)

	return app
}
