package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/carnamarket/backend/pkg/db/models"
)

// UserDTO is the transport shape that omits the password hash.
type UserDTO struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Phone          *string    `json:"phone,omitempty"`
	Address        *string    `json:"address,omitempty"`
	City           *string    `json:"city,omitempty"`
	PostalCode     *string    `json:"postal_code,omitempty"`
	IsVerified     bool       `json:"is_verified"`
	IsActive       bool       `json:"is_active"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CarnivalGroup  *GroupRef  `json:"carnival_group,omitempty"`
	CarnivalGroupID uuid.UUID `json:"carnival_group_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// GroupRef is the slim carnival group embedded alongside a user.
type GroupRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	City string    `json:"city"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	Phone           *string
	Address         *string
	City            *string
	PostalCode      *string
	CarnivalGroupID uuid.UUID
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	dto := &UserDTO{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Phone:           u.Phone,
		Address:         u.Address,
		City:            u.City,
		PostalCode:      u.PostalCode,
		IsVerified:      u.IsVerified,
		IsActive:        u.IsActive,
		LastLoginAt:     u.LastLoginAt,
		CarnivalGroupID: u.CarnivalGroupID,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
	if u.CarnivalGroup != nil {
		dto.CarnivalGroup = &GroupRef{
			ID:   u.CarnivalGroup.ID,
			Name: u.CarnivalGroup.Name,
			City: u.CarnivalGroup.City,
		}
	}
	return dto
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		ID:              uuid.New(),
		Email:           c.Email,
		PasswordHash:    c.PasswordHash,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Phone:           c.Phone,
		Address:         c.Address,
		City:            c.City,
		PostalCode:      c.PostalCode,
		IsActive:        true,
		CarnivalGroupID: c.CarnivalGroupID,
	}
}
