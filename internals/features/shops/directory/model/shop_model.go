package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel adalah listing toko milik agent. Record ini dibuat/di-maintain
// oleh sistem agent-facing di luar aplikasi ini — dari sini read-only.
type ShopModel struct {
	ShopID            uuid.UUID  `gorm:"column:shop_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"shop_id"`
	ShopName          string     `gorm:"column:shop_name;type:text" json:"shop_name"`
	ShopCategory      string     `gorm:"column:shop_category;type:text" json:"shop_category"`
	ShopLatitude      *float64   `gorm:"column:shop_latitude" json:"shop_latitude,omitempty"`
	ShopLongitude     *float64   `gorm:"column:shop_longitude" json:"shop_longitude,omitempty"`
	ShopPaymentStatus *string    `gorm:"column:shop_payment_status;type:varchar(16)" json:"shop_payment_status,omitempty"`
	ShopPlanType      *string    `gorm:"column:shop_plan_type;type:varchar(16)" json:"shop_plan_type,omitempty"`
	ShopRating        *float64   `gorm:"column:shop_rating;type:numeric(3,2)" json:"shop_rating,omitempty"`
	ShopPincode       string     `gorm:"column:shop_pincode;type:varchar(10)" json:"shop_pincode"`
	ShopCity          string     `gorm:"column:shop_city;type:text" json:"shop_city"`
	ShopAddress       string     `gorm:"column:shop_address;type:text" json:"shop_address"`
	ShopMobile        string     `gorm:"column:shop_mobile;type:varchar(16)" json:"shop_mobile"`
	ShopPhotoURL      string     `gorm:"column:shop_photo_url;type:text" json:"shop_photo_url"`
	ShopURL           string     `gorm:"column:shop_url;type:text" json:"shop_url"`
	ShopOwnerName     string     `gorm:"column:shop_owner_name;type:text" json:"shop_owner_name"`
	ShopVisitorCount  int        `gorm:"column:shop_visitor_count;default:0" json:"shop_visitor_count"`
	ShopAgentID       *uuid.UUID `gorm:"column:shop_agent_id;type:uuid" json:"shop_agent_id,omitempty"`

	ShopLastPaymentDate *time.Time `gorm:"column:shop_last_payment_date" json:"shop_last_payment_date,omitempty"`
	ShopCreatedAt       time.Time  `gorm:"column:shop_created_at;autoCreateTime" json:"shop_created_at"`
	ShopUpdatedAt       time.Time  `gorm:"column:shop_updated_at;autoUpdateTime" json:"shop_updated_at"`
}

func (ShopModel) TableName() string { return "agent_shops" }

// DefaultRating dipakai kalau kolom rating NULL.
const DefaultRating = 4.5
