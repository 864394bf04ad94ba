package groups

import (
	"time"

	"github.com/google/uuid"

	"github.com/carnamarket/backend/pkg/db/models"
)

// GroupDTO is the public carnival group representation.
type GroupDTO struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	City        string      `json:"city"`
	Province    *string     `json:"province,omitempty"`
	Country     string      `json:"country"`
	Description *string     `json:"description,omitempty"`
	Website     *string     `json:"website,omitempty"`
	IsVerified  bool        `json:"is_verified"`
	Members     []MemberDTO `json:"members,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// MemberDTO is the slim member projection exposed on the group detail view.
type MemberDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// CreateGroupDTO holds the data required to persist a new carnival group.
type CreateGroupDTO struct {
	Name        string
	City        string
	Province    *string
	Country     string
	Description *string
	Website     *string
	IsVerified  bool
}

func FromModel(g *models.CarnivalGroup) *GroupDTO {
	if g == nil {
		return nil
	}

	dto := &GroupDTO{
		ID:          g.ID,
		Name:        g.Name,
		City:        g.City,
		Province:    g.Province,
		Country:     g.Country,
		Description: g.Description,
		Website:     g.Website,
		IsVerified:  g.IsVerified,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	for _, m := range g.Members {
		dto.Members = append(dto.Members, MemberDTO{
			ID:        m.ID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
		})
	}
	return dto
}

func FromModels(gs []models.CarnivalGroup) []GroupDTO {
	out := make([]GroupDTO, 0, len(gs))
	for i := range gs {
		out = append(out, *FromModel(&gs[i]))
	}
	return out
}

func (c CreateGroupDTO) ToModel() *models.CarnivalGroup {
	country := c.Country
	if country == "" {
		country = "Belgium"
	}

	return &models.CarnivalGroup{
		ID:          uuid.New(),
		Name:        c.Name,
		City:        c.City,
		Province:    c.Province,
		Country:     country,
		Description: c.Description,
		Website:     c.Website,
		IsVerified:  c.IsVerified,
	}
}
