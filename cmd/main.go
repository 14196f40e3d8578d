// The Life Savers is a backend for a blood donor social platform
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/errors"
	"github.com/thelifesavers/backend/hub"
	"github.com/thelifesavers/backend/routes"
	"github.com/thelifesavers/backend/services"
	"github.com/thelifesavers/backend/utils"
)

var (
	env  config.Env
	conn connect.Connector
)

func init() {
	env.Load()

	conn.InitDatabase(&env)
	utils.CheckForDataFixes(&conn, &env)

	conn.InitRatelimiter(&env)
	conn.InitMessaging(&env)
}

func main() {
	app := fiber.New(fiber.Config{
		ErrorHandler: errors.Handler(&env),
	})
	if config.GetDevEnv(&env) == config.Dev {
		app.Use(fiberLogger.New())
	}

	app.Use(recover.New())
	app.Use(helmet.New())

	app.Use(cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowOrigins:     env.FrontendURL,
		AllowCredentials: true,
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
	}))

	app.Use(compress.New())

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusTooManyRequests)
		},
		LimiterMiddleware: limiter.SlidingWindow{},
		Storage:           conn.Ratelimter,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/ws"
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello! Backend server is running.")
	})

	app.Static("/public", "./public")

	app.Route("/monitor", func(router fiber.Router) {
		router.Get("/metrics", monitor.New(monitor.Config{
			Title: "Monitor The Life Savers",
		}))
	})

	relay := hub.New(&services.Chat{Conn: &conn})
	go relay.Run()

	routes.Register(app, &conn, &env, relay)

	app.Use(errors.NotFoundHandler)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
		<-quit

		relay.Stop()
		err := app.Shutdown()
		if err != nil {
			logger.Error(err)
		}
	}()

	logger.Errorf(app.Listen(fmt.Sprintf(":%s", env.Port)))
}
