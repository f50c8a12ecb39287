package route

import (
	"github.com/gofiber/fiber/v2"

	"rupeess_backend/internals/features/shops/directory/repository"
	"rupeess_backend/internals/features/shops/home/controller"
)

func HomeRoutes(api fiber.Router, repo *repository.ShopRepository) {
	ctrl := controller.NewHomeController(repo)
	api.Get("/home", ctrl.Home)
}
