package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carnamarket/backend/pkg/db/models"
	"github.com/carnamarket/backend/pkg/enums"
)

// ProductDTO is the full listing representation returned by the API.
type ProductDTO struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price"`
	Condition   enums.ProductCondition `json:"condition"`
	Size        *string                `json:"size,omitempty"`
	Color       *string                `json:"color,omitempty"`
	Material    *string                `json:"material,omitempty"`
	IsAvailable bool                   `json:"is_available"`
	IsFeatured  bool                   `json:"is_featured"`
	ViewCount   int                    `json:"view_count"`
	Seller      *SellerDTO             `json:"seller,omitempty"`
	Category    *CategoryRef           `json:"category,omitempty"`
	Images      []ImageDTO             `json:"images"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// SellerDTO is the seller projection embedded on listings.
type SellerDTO struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	City          *string   `json:"city,omitempty"`
	CarnivalGroup *string   `json:"carnival_group,omitempty"`
}

// CategoryRef is the slim category embedded on listings.
type CategoryRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Emoji *string   `json:"emoji,omitempty"`
}

// ImageDTO describes one listing photo.
type ImageDTO struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	IsPrimary bool      `json:"is_primary"`
}

// CreateProductDTO holds the data required to persist a new listing.
type CreateProductDTO struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Condition   enums.ProductCondition
	Size        *string
	Color       *string
	Material    *string
	SellerID    uuid.UUID
	CategoryID  uuid.UUID
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}

	dto := &ProductDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Condition:   p.Condition,
		Size:        p.Size,
		Color:       p.Color,
		Material:    p.Material,
		IsAvailable: p.IsAvailable,
		IsFeatured:  p.IsFeatured,
		ViewCount:   p.ViewCount,
		Images:      []ImageDTO{},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Seller != nil {
		seller := &SellerDTO{
			ID:        p.Seller.ID,
			FirstName: p.Seller.FirstName,
			LastName:  p.Seller.LastName,
			City:      p.Seller.City,
		}
		if p.Seller.CarnivalGroup != nil {
			name := p.Seller.CarnivalGroup.Name
			seller.CarnivalGroup = &name
		}
		dto.Seller = seller
	}
	if p.Category != nil {
		dto.Category = &CategoryRef{
			ID:    p.Category.ID,
			Name:  p.Category.Name,
			Slug:  p.Category.Slug,
			Emoji: p.Category.Emoji,
		}
	}
	for _, img := range p.Images {
		dto.Images = append(dto.Images, ImageDTO{
			ID:        img.ID,
			URL:       img.URL,
			IsPrimary: img.IsPrimary,
		})
	}
	return dto
}

func FromModels(ps []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *FromModel(&ps[i]))
	}
	return out
}

func (c CreateProductDTO) ToModel() *models.Product {
	condition := c.Condition
	if condition == "" {
		condition = enums.ProductConditionGood
	}

	return &models.Product{
		ID:          uuid.New(),
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		Condition:   condition,
		Size:        c.Size,
		Color:       c.Color,
		Material:    c.Material,
		IsAvailable: true,
		SellerID:    c.SellerID,
		CategoryID:  c.CategoryID,
	}
}
