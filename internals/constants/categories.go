package constants

// FallbackCategories dipakai saat DB tidak tersedia atau distinct kosong.
var FallbackCategories = []string{
	"Restaurant",
	"Hotels",
	"Electronics",
	"Fashion",
	"Wellness",
	"Cafe",
	"Fitness",
	"Beauty",
	"Healthcare",
	"Education",
	"Automotive",
	"Grocery",
	"Shopping",
	"AC Repair",
	"Plumber",
	"Electrician",
}

// Plan type (paid promotion tier) yang mengontrol eligibility rail.
const (
	PlanHero     = "HERO"
	PlanPremium  = "PREMIUM"
	PlanFeatured = "FEATURED"
	PlanBasic    = "BASIC"
	PlanLeftBar  = "LEFT_BAR"
	PlanRight    = "RIGHT_SIDE"
)

// Rail slot names.
const (
	RailHero  = "hero"
	RailLeft  = "left"
	RailRight = "right"
)

const PaymentStatusPaid = "PAID"
