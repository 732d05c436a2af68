package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "mudarris_backend/internals/features/users/auth/controller"
	authMiddleware "mudarris_backend/internals/middlewares/auth"
	middlewares "mudarris_backend/internals/middlewares"
)

// AuthRoutes mounts the public auth endpoints and the token-scoped ones.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	public := app.Group("/api/auth")
	public.Post("/register", ctrl.Register)
	public.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	private := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	private.Post("/logout", ctrl.Logout)
	private.Get("/me", ctrl.Me)
}
