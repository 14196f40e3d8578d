// Package routes wires the http routes to their controllers
package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/controllers"
	"github.com/thelifesavers/backend/hub"
	"github.com/thelifesavers/backend/middleware"
	"github.com/thelifesavers/backend/otp"
	"github.com/thelifesavers/backend/services"
)

// Register mounts every route of the platform on the given app
func Register(app *fiber.App, conn *connect.Connector, env *config.Env, relay *hub.Hub) {
	authM := middleware.Auth{
		Env: env,
	}

	authC := controllers.Auth{Conn: conn, Env: env}
	userC := controllers.User{Conn: conn, Env: env}
	reviewC := controllers.Review{Conn: conn, Env: env}
	blogC := controllers.Blog{Conn: conn, Env: env}
	chatC := controllers.Chat{Conn: conn, Env: env, Hub: relay}
	notificationC := controllers.Notification{Conn: conn, Env: env}
	emailC := controllers.Email{
		Conn: conn,
		Env:  env,
		// two independent OTP mechanisms: reset codes survive a restart,
		// verification codes do not
		ResetOTP:        otp.NewService(&services.ResetOTPStore{Conn: conn}),
		VerificationOTP: otp.NewService(otp.NewMemoryStore()),
	}

	api := app.Group("/api")

	api.Post("/register", authC.Register)
	api.Post("/login", authC.Login)
	api.Put("/users/:id", authM.Check, userC.Update)
	api.Post("/verify-password", authM.Check, userC.VerifyPassword)
	api.Get("/users", authM.Check, userC.GetUsers)
	api.Get("/filter-users", userC.FilterUsers)

	api.Post("/forgot-password", emailC.ForgotPassword)
	api.Post("/reset-password", emailC.ResetPassword)
	api.Post("/send-verification-otp", emailC.SendOTP)
	api.Post("/verify-otp", emailC.VerifyOTP)
	api.Post("/contact", emailC.Contact)

	api.Post("/reviews", authM.Check, reviewC.Create)
	api.Put("/reviews/:reviewId", authM.Check, reviewC.Update)
	api.Delete("/reviews/:id", authM.Check, reviewC.Delete)
	api.Get("/reviews", reviewC.List)

	api.Get("/chat/history", chatC.History)

	blogs := app.Group("/api/blogs")
	blogs.Post("/", blogC.Create)
	blogs.Get("/", blogC.List)
	blogs.Get("/:id", blogC.Get)
	blogs.Put("/:id", blogC.Update)
	blogs.Delete("/:id", blogC.Delete)

	notifications := app.Group("/api/notifications")
	notifications.Post("/save-token", notificationC.SaveToken)
	notifications.Post("/send", notificationC.SendToUser)
	notifications.Post("/broadcast", notificationC.Broadcast)

	app.Post("/send-notification", chatC.Notify)

	// the realtime channel is unauthenticated
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		relay.Serve(conn)
	}))
}
