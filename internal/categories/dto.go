package categories

import (
	"time"

	"github.com/google/uuid"

	"github.com/carnamarket/backend/pkg/db/models"
)

// CategoryDTO is the public category representation.
type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Emoji       *string   `json:"emoji,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCategoryDTO holds the data required to persist a new category.
type CreateCategoryDTO struct {
	Name        string
	Slug        string
	Description *string
	Emoji       *string
}

func FromModel(c *models.Category) *CategoryDTO {
	if c == nil {
		return nil
	}

	return &CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Emoji:       c.Emoji,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromModels(cs []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *FromModel(&cs[i]))
	}
	return out
}

func (c CreateCategoryDTO) ToModel() *models.Category {
	return &models.Category{
		ID:          uuid.New(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Emoji:       c.Emoji,
	}
}
