package ports

import "github.com/autoluxe/luxury_cars_backend/internal/core/domain"

type TokenService interface {
	IssueToken(email string) (string, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}
