package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"rupeess_backend/internals/configs"
	"rupeess_backend/internals/constants"
	"rupeess_backend/internals/features/shops/directory/dto"
)

// ErrNoDatabase: DB tidak dikonfigurasi; caller degrade ke fallback data.
var ErrNoDatabase = errors.New("database not configured")

type ShopRepository struct {
	DB     *gorm.DB
	Policy configs.NearbyPolicy
}

func NewShopRepository(db *gorm.DB, policy configs.NearbyPolicy) *ShopRepository {
	return &ShopRepository{DB: db, Policy: policy}
}

// ResolveRailLimit: hero 5, rail bernama 2, tanpa rail 100 (semua dari policy).
func ResolveRailLimit(rail string, p configs.NearbyPolicy) int {
	switch rail {
	case constants.RailHero:
		return p.HeroLimit
	case "":
		return p.DefaultLimit
	default:
		return p.RailLimit
	}
}

// railFilterSQL mempersempit eligible set per plan type. Rail kiri/kanan
// inklusif: toko tanpa plan_type tetap eligible.
func railFilterSQL(rail string) (string, []interface{}) {
	switch rail {
	case constants.RailHero:
		return "AND shop_plan_type IN (?, ?, ?, ?)",
			[]interface{}{constants.PlanHero, constants.PlanPremium, constants.PlanFeatured, constants.PlanBasic}
	case constants.RailLeft:
		return "AND (shop_plan_type IN (?, ?, ?) OR shop_plan_type IS NULL)",
			[]interface{}{constants.PlanLeftBar, constants.PlanPremium, constants.PlanFeatured}
	case constants.RailRight:
		return "AND (shop_plan_type IN (?, ?, ?) OR shop_plan_type IS NULL)",
			[]interface{}{constants.PlanRight, constants.PlanPremium, constants.PlanFeatured}
	default:
		return "", nil
	}
}

const nearbySelect = `
SELECT shop_id::text AS id,
       shop_name AS name,
       shop_category AS category,
       COALESCE(shop_rating, 4.5) AS rating,
       ROUND(CAST(6371 * acos(LEAST(1.0, GREATEST(-1.0,
           sin(radians(shop_latitude)) * sin(radians(@lat))
         + cos(radians(shop_latitude)) * cos(radians(@lat))
           * cos(radians(shop_longitude) - radians(@lng))
       ))) AS numeric), 2) AS distance,
       shop_photo_url AS photo_url,
       shop_url AS shop_url,
       shop_plan_type AS plan_type,
       shop_owner_name AS owner,
       shop_city AS city,
       shop_pincode AS pincode,
       COALESCE(shop_visitor_count, 0) AS views
  FROM agent_shops
 WHERE shop_payment_status = 'PAID'
   AND shop_latitude IS NOT NULL
   AND shop_longitude IS NOT NULL
   AND shop_name IS NOT NULL
   AND shop_name <> ''`

// nearbyQuery merakit SQL ranking + named args; dipisah supaya bentuk
// query (order, radius bound, rail args) bisa diverifikasi tanpa DB.
func (r *ShopRepository) nearbyQuery(lat, lng float64, rail string) (string, string, map[string]interface{}) {
	railSQL, railArgs := railFilterSQL(rail)

	args := map[string]interface{}{
		"lat":    lat,
		"lng":    lng,
		"radius": r.Policy.RadiusKm,
		"limit":  ResolveRailLimit(rail, r.Policy),
	}
	// Raw dengan map args tidak bisa dicampur placeholder posisi,
	// jadi nilai rail ikut masuk sebagai named arg.
	railSQLNamed := railSQL
	for i, a := range railArgs {
		key := fmt.Sprintf("plan%d", i)
		args[key] = a
		railSQLNamed = strings.Replace(railSQLNamed, "?", "@"+key, 1)
	}

	query := fmt.Sprintf(`
SELECT * FROM (%s %s) ranked
 WHERE ranked.distance <= @radius
 ORDER BY ranked.distance ASC
 LIMIT @limit`, nearbySelect, railSQLNamed)

	return query, railSQLNamed, args
}

// Nearby: ranking jarak great-circle (R=6371 km) ascending, dibatasi
// radius + limit per rail. Kalau kosong dan fallback aktif → toko
// terbaru (tanpa syarat koordinat) dengan distance NULL.
func (r *ShopRepository) Nearby(lat, lng float64, rail string) ([]dto.NearbyShop, error) {
	if r.DB == nil {
		return nil, ErrNoDatabase
	}

	query, railSQLNamed, args := r.nearbyQuery(lat, lng, rail)
	limit := ResolveRailLimit(rail, r.Policy)

	shops := []dto.NearbyShop{}
	if err := r.DB.Raw(query, args).Scan(&shops).Error; err != nil {
		return nil, err
	}

	if len(shops) == 0 && r.Policy.FallbackEnabled {
		return r.nearbyFallback(railSQLNamed, args, limit)
	}
	return shops, nil
}

// nearbyFallback: tidak ada toko dalam radius → tampilkan yang paling baru
// bayar, koordinat tidak disyaratkan, distance dilaporkan null.
func (r *ShopRepository) nearbyFallback(railSQLNamed string, args map[string]interface{}, limit int) ([]dto.NearbyShop, error) {
	query := fmt.Sprintf(`
SELECT shop_id::text AS id,
       shop_name AS name,
       shop_category AS category,
       COALESCE(shop_rating, 4.5) AS rating,
       NULL::numeric AS distance,
       shop_photo_url AS photo_url,
       shop_url AS shop_url,
       shop_plan_type AS plan_type,
       shop_owner_name AS owner,
       shop_city AS city,
       shop_pincode AS pincode,
       COALESCE(shop_visitor_count, 0) AS views
  FROM agent_shops
 WHERE shop_payment_status = 'PAID'
   AND shop_name IS NOT NULL
   AND shop_name <> ''
   %s
 ORDER BY shop_last_payment_date DESC NULLS LAST, shop_created_at DESC
 LIMIT @limit`, railSQLNamed)

	shops := []dto.NearbyShop{}
	if err := r.DB.Raw(query, args).Scan(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// Search: category/search substring case-insensitive, pincode exact,
// AND antar named filter, OR antar field yang disentuh free text.
// paymentStatus di path ini opsional (PAID-atau-absen dianggap eligible).
func (r *ShopRepository) Search(category, pincode, search string, limit int) ([]dto.SearchShop, error) {
	if r.DB == nil {
		return nil, ErrNoDatabase
	}
	if limit <= 0 {
		limit = 20
	}

	q := r.DB.Table("agent_shops").
		Select(`shop_id::text AS id,
			shop_name AS name,
			shop_category AS category,
			COALESCE(shop_rating, 4.5) AS rating,
			shop_photo_url AS photo_url,
			shop_url AS shop_url,
			shop_plan_type AS plan_type,
			shop_pincode AS pincode,
			shop_address AS address,
			shop_mobile AS mobile,
			COALESCE(shop_visitor_count, 0) AS visitor_count`).
		Where("(shop_payment_status = ? OR shop_payment_status IS NULL)", constants.PaymentStatusPaid)

	if category != "" {
		q = q.Where("shop_category ILIKE ?", "%"+category+"%")
	}
	if pincode != "" {
		q = q.Where("shop_pincode = ?", pincode)
	}
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("shop_name ILIKE ? OR shop_category ILIKE ? OR shop_address ILIKE ?",
			pattern, pattern, pattern)
	}

	shops := []dto.SearchShop{}
	err := q.Order("shop_last_payment_date DESC NULLS LAST").
		Limit(limit).
		Scan(&shops).Error
	if err != nil {
		return nil, err
	}
	return shops, nil
}

// Categories: distinct category non-kosong milik toko PAID-atau-absen,
// urut alfabetis.
func (r *ShopRepository) Categories() ([]string, error) {
	if r.DB == nil {
		return nil, ErrNoDatabase
	}

	var categories []string
	err := r.DB.Table("agent_shops").
		Distinct("shop_category").
		Where("(shop_payment_status = ? OR shop_payment_status IS NULL)", constants.PaymentStatusPaid).
		Where("shop_category IS NOT NULL AND shop_category <> ''").
		Order("shop_category ASC").
		Pluck("shop_category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
