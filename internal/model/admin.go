package model

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

type Session struct {
	Token     string    `json:"token"`
	AdminID   uuid.UUID `json:"admin_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
