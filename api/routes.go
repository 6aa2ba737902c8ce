package api

import (
	"os-scheduler-sim/config"
	"os-scheduler-sim/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewApp(cfg *config.SchedulerConfig, runs store.RunStore) *fiber.App {
	return newApp(NewSchedulerHandlerImpl(cfg, runs), NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
}

func newApp(handler SchedulerHandler, limiter *RateLimiter) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(recover.New())
	SetupRoutes(app, handler, limiter)
	return app
}

func SetupRoutes(app *fiber.App, handler SchedulerHandler, limiter *RateLimiter) {
	app.Get("/api/v1/health", handler.Health)

	api := app.Group("/api")
	v1 := api.Group("/v1", limiter.Handler())
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/runs/:id", handler.GetRun)
	}
}
