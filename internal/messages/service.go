package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carnamarket/backend/pkg/db/models"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
)

type messageRepository interface {
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	ListConversation(ctx context.Context, a, b uuid.UUID) ([]models.Message, error)
	MarkRead(ctx context.Context, readerID, otherID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type usersRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service exposes direct messaging operations.
type Service interface {
	Send(ctx context.Context, senderID uuid.UUID, input SendMessageInput) (*MessageDTO, error)
	Conversation(ctx context.Context, userID, otherID uuid.UUID) ([]MessageDTO, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	repo  messageRepository
	users usersRepository
}

// NewService builds a messages service with the provided repositories.
func NewService(repo messageRepository, users usersRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("message repository required")
	}
	if users == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo, users: users}, nil
}

// SendMessageInput captures a new direct message.
type SendMessageInput struct {
	ReceiverID uuid.UUID
	Content    string
	ProductID  *uuid.UUID
}

func (s *service) Send(ctx context.Context, senderID uuid.UUID, input SendMessageInput) (*MessageDTO, error) {
	if senderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message content is required")
	}
	if input.ReceiverID == senderID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot message yourself")
	}

	if _, err := s.users.FindByID(ctx, input.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Recipient not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load recipient")
	}

	message, err := s.repo.Create(ctx, &models.Message{
		ID:         uuid.New(),
		Content:    input.Content,
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		ProductID:  input.ProductID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create message")
	}
	return FromModel(message), nil
}

// Conversation returns the exchange with the other user and marks the
// caller's side of it as read.
func (s *service) Conversation(ctx context.Context, userID, otherID uuid.UUID) ([]MessageDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
	}

	msgs, err := s.repo.ListConversation(ctx, userID, otherID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list conversation")
	}
	if err := s.repo.MarkRead(ctx, userID, otherID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark messages read")
	}
	return FromModels(msgs), nil
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
	}

	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count unread")
	}
	return n, nil
}
