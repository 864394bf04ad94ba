package auth

import (
	"github.com/google/uuid"

	"github.com/carnamarket/backend/internal/users"
)

// RegisterRequest contains the payload required to create an account.
// Request bodies use the frontend's camelCase keys.
type RegisterRequest struct {
	Email           string     `json:"email" validate:"required,email"`
	Password        string     `json:"password" validate:"required,min=8,password"`
	FirstName       string     `json:"firstName" validate:"required"`
	LastName        string     `json:"lastName" validate:"required"`
	Phone           *string    `json:"phone,omitempty" validate:"omitempty,phone"`
	Address         *string    `json:"address,omitempty"`
	City            *string    `json:"city,omitempty"`
	PostalCode      *string    `json:"postalCode,omitempty"`
	CarnivalGroupID *uuid.UUID `json:"carnivalGroupId,omitempty"`
}

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GroupSummary is the carnival group slice returned with auth responses.
type GroupSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	City    string    `json:"city"`
	Country string    `json:"country"`
}

// AuthResponse is the shape shared by register and login.
type AuthResponse struct {
	Token         string         `json:"token"`
	User          *users.UserDTO `json:"user"`
	CarnivalGroup *GroupSummary  `json:"carnival_group,omitempty"`
}
