package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents the canonical identity entity. The password digest never
// leaves the data layer: serialization goes through users.UserDTO, which has
// no field for it.
type User struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email           string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash    string         `gorm:"column:password_hash;not null"`
	FirstName       string         `gorm:"column:first_name;not null"`
	LastName        string         `gorm:"column:last_name;not null"`
	Phone           *string        `gorm:"column:phone"`
	Address         *string        `gorm:"column:address"`
	City            *string        `gorm:"column:city"`
	PostalCode      *string        `gorm:"column:postal_code"`
	IsVerified      bool           `gorm:"column:is_verified;not null;default:false"`
	IsActive        bool           `gorm:"column:is_active;not null;default:true"`
	LastLoginAt     *time.Time     `gorm:"column:last_login_at"`
	CarnivalGroupID uuid.UUID      `gorm:"column:carnival_group_id;type:uuid;not null"`
	CarnivalGroup   *CarnivalGroup `gorm:"foreignKey:CarnivalGroupID"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
