package controller

import (
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"

	"rupeess_backend/internals/constants"
	"rupeess_backend/internals/features/shops/directory/dto"
)

// Koordinat default saat browser gagal geolokasi (New Delhi).
const (
	DefaultLat = 28.6139
	DefaultLng = 77.2090
)

// NearbyFetcher di-satisfy oleh repository.ShopRepository.
type NearbyFetcher interface {
	Nearby(lat, lng float64, rail string) ([]dto.NearbyShop, error)
}

type HomeRails struct {
	General []dto.NearbyShop `json:"general"`
	Hero    []dto.NearbyShop `json:"hero"`
	Left    []dto.NearbyShop `json:"left"`
	Right   []dto.NearbyShop `json:"right"`
}

type HomeController struct {
	Shops NearbyFetcher
}

func NewHomeController(shops NearbyFetcher) *HomeController {
	return &HomeController{Shops: shops}
}

// =======================
// 🏠 GET /api/home?lat&lng
// =======================
// Empat ranking query (general + tiga rail) jalan paralel; satu rail
// gagal tidak memblokir yang lain — rail itu degrade ke array kosong.
func (ctrl *HomeController) Home(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil || lat == 0 || lng == 0 {
		lat, lng = DefaultLat, DefaultLng
	}

	rails := ctrl.FetchRails(lat, lng)
	c.Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=300")
	return c.JSON(rails)
}

// FetchRails mengambil keempat rail secara concurrent dan menunggu semua
// settle; failure isolation per call.
func (ctrl *HomeController) FetchRails(lat, lng float64) HomeRails {
	rails := HomeRails{
		General: []dto.NearbyShop{},
		Hero:    []dto.NearbyShop{},
		Left:    []dto.NearbyShop{},
		Right:   []dto.NearbyShop{},
	}

	targets := []struct {
		rail string
		dest *[]dto.NearbyShop
	}{
		{"", &rails.General},
		{constants.RailHero, &rails.Hero},
		{constants.RailLeft, &rails.Left},
		{constants.RailRight, &rails.Right},
	}

	var wg sync.WaitGroup
	for _, t := range targets {
		wg.Add(1)
		go func(rail string, dest *[]dto.NearbyShop) {
			defer wg.Done()
			shops, err := ctrl.Shops.Nearby(lat, lng, rail)
			if err != nil {
				log.Printf("[ERROR] Home rail %q gagal: %v", rail, err)
				return
			}
			if shops != nil {
				*dest = shops
			}
		}(t.rail, t.dest)
	}
	wg.Wait()

	return rails
}
