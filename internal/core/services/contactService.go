package services

import (
	"context"
	"fmt"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type ContactService struct {
	contactRepo ports.ContactRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
}

func NewContactService(
	contactRepo ports.ContactRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		logger:      logger,
		validate:    validate,
	}
}

func (s *ContactService) SubmitMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	if err := s.validate.Struct(msg); err != nil {
		s.logger.Error("Contact message validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	createdMsg, err := s.contactRepo.CreateMessage(ctx, msg)
	if err != nil {
		s.logger.Error("Failed to create contact message", map[string]interface{}{
			"error": err.Error(),
			"email": msg.Email,
		})
		return nil, err
	}

	s.logger.Info("Contact message submitted", map[string]interface{}{
		"message_id": createdMsg.ID,
		"email":      createdMsg.Email,
	})

	return createdMsg, nil
}

func (s *ContactService) ListMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.contactRepo.ListMessages(ctx)
	if err != nil {
		s.logger.Error("Failed to list contact messages", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return messages, nil
}

func (s *ContactService) UpdateMessageStatus(ctx context.Context, id int, status string) error {
	messageStatus := domain.MessageStatus(status)
	if !messageStatus.Valid() {
		s.logger.Warn("Invalid message status", map[string]interface{}{
			"status":     status,
			"message_id": id,
		})
		return domain.ErrInvalidStatus
	}

	if err := s.contactRepo.UpdateMessageStatus(ctx, id, messageStatus); err != nil {
		s.logger.Error("Failed to update contact message", map[string]interface{}{
			"error":      err.Error(),
			"message_id": id,
		})
		return err
	}

	s.logger.Info("Contact message updated", map[string]interface{}{
		"message_id": id,
		"status":     status,
	})

	return nil
}
