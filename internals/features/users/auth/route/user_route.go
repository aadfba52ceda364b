package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "elevencentral_backend/internals/features/users/auth/controller"
	"elevencentral_backend/internals/middlewares"
	authMiddleware "elevencentral_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	public := app.Group("/api/auth")
	public.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	public.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	public.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	public.Post("/refresh", ctl.Refresh)

	private := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	private.Post("/logout", ctl.Logout)
	private.Get("/me", ctl.Me)
}
