package services

import (
	"context"
	"fmt"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type UserService struct {
	userRepo ports.UserRepository
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewUserService(
	userRepo ports.UserRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
		validate: validate,
	}
}

func (s *UserService) SaveProfile(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error) {
	if err := s.validate.Struct(user); err != nil {
		s.logger.Error("User profile validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	savedUser, err := s.userRepo.UpsertUser(ctx, user)
	if err != nil {
		s.logger.Error("Failed to save user profile", map[string]interface{}{
			"error": err.Error(),
			"email": user.Email,
		})
		return nil, err
	}

	s.logger.Info("User profile saved", map[string]interface{}{
		"user_id": savedUser.ID,
		"email":   savedUser.Email,
	})

	return savedUser, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to get user", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.UserProfile, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return users, nil
}
