package route

import (
	"github.com/gofiber/fiber/v2"

	"rupeess_backend/internals/features/shops/directory/controller"
	"rupeess_backend/internals/features/shops/directory/repository"
)

func ShopRoutes(api fiber.Router, repo *repository.ShopRepository) {
	ctrl := controller.NewShopController(repo)

	api.Get("/nearby", ctrl.Nearby)

	shops := api.Group("/shops")
	shops.Get("/search", ctrl.Search)
	shops.Get("/categories", ctrl.Categories)
}
