package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carnamarket/backend/pkg/enums"
)

// Order records a purchase between two users. Monetary columns are strictly
// positive and fixed to two fraction digits.
type Order struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber     string              `gorm:"column:order_number;not null;uniqueIndex"`
	ItemPrice       decimal.Decimal     `gorm:"column:item_price;type:numeric(10,2);not null"`
	PlatformFee     decimal.Decimal     `gorm:"column:platform_fee;type:numeric(10,2);not null"`
	TotalAmount     decimal.Decimal     `gorm:"column:total_amount;type:numeric(10,2);not null"`
	Status          enums.OrderStatus   `gorm:"column:status;not null;default:'pending'"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;not null"`
	PaymentIntentID *string             `gorm:"column:payment_intent_id"`
	ShippingAddress string              `gorm:"column:shipping_address;not null"`
	BuyerID         uuid.UUID           `gorm:"column:buyer_id;type:uuid;not null"`
	Buyer           *User               `gorm:"foreignKey:BuyerID"`
	SellerID        uuid.UUID           `gorm:"column:seller_id;type:uuid;not null"`
	Seller          *User               `gorm:"foreignKey:SellerID"`
	ProductID       uuid.UUID           `gorm:"column:product_id;type:uuid;not null"`
	Product         *Product            `gorm:"foreignKey:ProductID"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
