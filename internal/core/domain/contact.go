package domain

import (
	"time"
)

type MessageStatus string

const (
	MessageNew       MessageStatus = "new"
	MessageRead      MessageStatus = "read"
	MessageResponded MessageStatus = "responded"
)

func (s MessageStatus) Valid() bool {
	switch s {
	case MessageNew, MessageRead, MessageResponded:
		return true
	}
	return false
}

type ContactMessage struct {
	ID        int           `json:"id"`
	Name      string        `json:"name" validate:"required"`
	Email     string        `json:"email" validate:"required,email"`
	Message   string        `json:"message" validate:"required"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
