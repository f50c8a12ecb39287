package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID              uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserName            string    `gorm:"column:user_name;type:text;not null" json:"user_name"`
	UserEmail           string    `gorm:"column:user_email;type:text;not null;uniqueIndex" json:"user_email"`
	UserPhone           *string   `gorm:"column:user_phone;type:varchar(16)" json:"user_phone,omitempty"`
	UserPassword        string    `gorm:"column:user_password;type:text;not null" json:"-"`
	UserRole            string    `gorm:"column:user_role;type:varchar(16);not null;default:user" json:"user_role"`
	UserAgentCode       *string   `gorm:"column:user_agent_code;type:varchar(8)" json:"user_agent_code,omitempty"`
	UserOperatorCode    *string   `gorm:"column:user_operator_code;type:varchar(8)" json:"user_operator_code,omitempty"`
	UserIsActive        bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserIsEmailVerified bool      `gorm:"column:user_is_email_verified;not null;default:false" json:"user_is_email_verified"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
