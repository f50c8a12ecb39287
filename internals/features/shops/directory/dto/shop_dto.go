package dto

// NearbyShop adalah satu baris hasil proximity ranking.
// Distance nil = baris dari fallback path (toko tanpa koordinat).
type NearbyShop struct {
	ID       string   `gorm:"column:id" json:"id"`
	Name     string   `gorm:"column:name" json:"name"`
	Category string   `gorm:"column:category" json:"category"`
	Rating   float64  `gorm:"column:rating" json:"rating"`
	Distance *float64 `gorm:"column:distance" json:"distance"`
	PhotoURL string   `gorm:"column:photo_url" json:"photoUrl"`
	ShopURL  string   `gorm:"column:shop_url" json:"shopUrl"`
	PlanType *string  `gorm:"column:plan_type" json:"planType"`
	Owner    string   `gorm:"column:owner" json:"owner"`
	City     string   `gorm:"column:city" json:"city"`
	Pincode  string   `gorm:"column:pincode" json:"pincode"`
	Views    int      `gorm:"column:views" json:"views"`
}

// SearchShop adalah satu baris hasil pencarian by category/pincode/teks.
type SearchShop struct {
	ID           string  `gorm:"column:id" json:"id"`
	Name         string  `gorm:"column:name" json:"name"`
	Category     string  `gorm:"column:category" json:"category"`
	Rating       float64 `gorm:"column:rating" json:"rating"`
	PhotoURL     string  `gorm:"column:photo_url" json:"photoUrl"`
	ShopURL      string  `gorm:"column:shop_url" json:"shopUrl"`
	PlanType     *string `gorm:"column:plan_type" json:"planType"`
	Pincode      string  `gorm:"column:pincode" json:"pincode"`
	Address      string  `gorm:"column:address" json:"address"`
	Mobile       string  `gorm:"column:mobile" json:"mobile"`
	VisitorCount int     `gorm:"column:visitor_count" json:"visitorCount"`
}
