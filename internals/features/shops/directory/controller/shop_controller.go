package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"rupeess_backend/internals/constants"
	"rupeess_backend/internals/features/shops/directory/dto"
	"rupeess_backend/internals/features/shops/directory/repository"
	helper "rupeess_backend/internals/helpers"
)

type ShopController struct {
	Repo *repository.ShopRepository
}

func NewShopController(repo *repository.ShopRepository) *ShopController {
	return &ShopController{Repo: repo}
}

// =======================
// 📍 GET /api/nearby?lat&lng&rail
// =======================
// Upstream gagal → array kosong, BUKAN error envelope: client selalu
// meng-handle collection. Error tetap dicatat server-side.
func (ctrl *ShopController) Nearby(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil || lat == 0 || lng == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "lat and lng parameters are required")
	}
	rail := c.Query("rail")

	shops, err := ctrl.Repo.Nearby(lat, lng, rail)
	if err != nil {
		log.Printf("[ERROR] Nearby query gagal (rail=%q): %v", rail, err)
		return c.JSON([]dto.NearbyShop{})
	}

	c.Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=300")
	return c.JSON(shops)
}

// =======================
// 🔍 GET /api/shops/search?category&pincode&search&limit
// =======================
func (ctrl *ShopController) Search(c *fiber.Ctx) error {
	category := c.Query("category")
	pincode := c.Query("pincode")
	search := c.Query("search")
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	log.Printf("[INFO] Searching shops - category: %s, pincode: %s, search: %s", category, pincode, search)

	shops, err := ctrl.Repo.Search(category, pincode, search, limit)
	if err != nil {
		log.Printf("[ERROR] Search query gagal: %v", err)
		return c.JSON([]dto.SearchShop{})
	}

	log.Printf("[INFO] Found %d shops matching search criteria", len(shops))
	return c.JSON(shops)
}

// =======================
// 🏷 GET /api/shops/categories
// =======================
// Sumber unavailable ATAU kosong → static fallback list.
func (ctrl *ShopController) Categories(c *fiber.Ctx) error {
	categories, err := ctrl.Repo.Categories()
	if err != nil {
		log.Printf("[WARNING] Categories query gagal, pakai fallback: %v", err)
		return c.JSON(constants.FallbackCategories)
	}
	if len(categories) == 0 {
		log.Println("[WARNING] Tidak ada category di database, pakai fallback")
		return c.JSON(constants.FallbackCategories)
	}
	return c.JSON(categories)
}
