package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carnamarket/backend/pkg/enums"
)

// Product represents a second-hand listing put up by a seller.
type Product struct {
	ID          uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string                 `gorm:"column:title;not null"`
	Description string                 `gorm:"column:description;not null"`
	Price       decimal.Decimal        `gorm:"column:price;type:numeric(10,2);not null"`
	Condition   enums.ProductCondition `gorm:"column:condition;not null;default:'good'"`
	Size        *string                `gorm:"column:size"`
	Color       *string                `gorm:"column:color"`
	Material    *string                `gorm:"column:material"`
	IsAvailable bool                   `gorm:"column:is_available;not null;default:true"`
	IsFeatured  bool                   `gorm:"column:is_featured;not null;default:false"`
	ViewCount   int                    `gorm:"column:view_count;not null;default:0"`
	SellerID    uuid.UUID              `gorm:"column:seller_id;type:uuid;not null"`
	Seller      *User                  `gorm:"foreignKey:SellerID"`
	CategoryID  uuid.UUID              `gorm:"column:category_id;type:uuid;not null"`
	Category    *Category              `gorm:"foreignKey:CategoryID"`
	Images      []ProductImage         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductImage stores upload metadata for one listing photo.
type ProductImage struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Filename     string    `gorm:"column:filename;not null"`
	OriginalName string    `gorm:"column:original_name;not null"`
	MimeType     string    `gorm:"column:mime_type;not null"`
	ByteSize     int64     `gorm:"column:byte_size;not null"`
	URL          string    `gorm:"column:url;not null"`
	IsPrimary    bool      `gorm:"column:is_primary;not null;default:false"`
	ProductID    uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
