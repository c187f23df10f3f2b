package ports

import (
	"context"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
)

type ContactRepository interface {
	CreateMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	ListMessages(ctx context.Context) ([]*domain.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id int, status domain.MessageStatus) error
}
