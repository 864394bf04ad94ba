package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two users, optionally anchored to a
// product the conversation is about.
type Message struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Content    string     `gorm:"column:content;not null"`
	IsRead     bool       `gorm:"column:is_read;not null;default:false"`
	SenderID   uuid.UUID  `gorm:"column:sender_id;type:uuid;not null"`
	Sender     *User      `gorm:"foreignKey:SenderID"`
	ReceiverID uuid.UUID  `gorm:"column:receiver_id;type:uuid;not null"`
	Receiver   *User      `gorm:"foreignKey:ReceiverID"`
	ProductID  *uuid.UUID `gorm:"column:product_id;type:uuid"`
	Product    *Product   `gorm:"foreignKey:ProductID"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
