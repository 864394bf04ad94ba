package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carnamarket/backend/pkg/db/models"
	"github.com/carnamarket/backend/pkg/enums"
)

// OrderDTO is the purchase representation returned by the API.
type OrderDTO struct {
	ID              uuid.UUID           `json:"id"`
	OrderNumber     string              `json:"order_number"`
	ItemPrice       decimal.Decimal     `json:"item_price"`
	PlatformFee     decimal.Decimal     `json:"platform_fee"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          enums.OrderStatus   `json:"status"`
	PaymentMethod   enums.PaymentMethod `json:"payment_method"`
	ShippingAddress string              `json:"shipping_address"`
	BuyerID         uuid.UUID           `json:"buyer_id"`
	SellerID        uuid.UUID           `json:"seller_id"`
	ProductID       uuid.UUID           `json:"product_id"`
	ProductTitle    *string             `json:"product_title,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}

	dto := &OrderDTO{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		ItemPrice:       o.ItemPrice,
		PlatformFee:     o.PlatformFee,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		ProductID:       o.ProductID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.Product != nil {
		title := o.Product.Title
		dto.ProductTitle = &title
	}
	return dto
}

func FromModels(os []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(os))
	for i := range os {
		out = append(out, *FromModel(&os[i]))
	}
	return out
}
