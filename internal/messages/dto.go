package messages

import (
	"time"

	"github.com/google/uuid"

	"github.com/carnamarket/backend/pkg/db/models"
)

// MessageDTO is the direct message representation returned by the API.
type MessageDTO struct {
	ID         uuid.UUID  `json:"id"`
	Content    string     `json:"content"`
	IsRead     bool       `json:"is_read"`
	SenderID   uuid.UUID  `json:"sender_id"`
	ReceiverID uuid.UUID  `json:"receiver_id"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromModel(m *models.Message) *MessageDTO {
	if m == nil {
		return nil
	}

	return &MessageDTO{
		ID:         m.ID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		ProductID:  m.ProductID,
		CreatedAt:  m.CreatedAt,
	}
}

func FromModels(ms []models.Message) []MessageDTO {
	out := make([]MessageDTO, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
