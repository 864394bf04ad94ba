package models

import (
	"time"

	"github.com/google/uuid"
)

// CarnivalGroup is the community a user marches with. Groups are shared
// reference data: they are listed publicly and own their members.
type CarnivalGroup struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name;not null;uniqueIndex"`
	City        string    `gorm:"column:city;not null"`
	Province    *string   `gorm:"column:province"`
	Country     string    `gorm:"column:country;not null;default:'Belgium'"`
	Description *string   `gorm:"column:description"`
	Website     *string   `gorm:"column:website"`
	IsVerified  bool      `gorm:"column:is_verified;not null;default:false"`
	Members     []User    `gorm:"foreignKey:CarnivalGroupID"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (CarnivalGroup) TableName() string {
	return "carnival_groups"
}
