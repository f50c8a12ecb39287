package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rupeess_backend/internals/configs"
	"rupeess_backend/internals/features/users/auth/controller"
	"rupeess_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := controller.NewAuthController(db, cfg)

	auth := api.Group("/auth")
	auth.Post("/signup", middlewares.SignupRateLimiter(), ctrl.Signup)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me", ctrl.Me)
}
