package models

import (
	"time"

	"github.com/google/uuid"
)

// Teacher defines a teacher account ('teachers' table)
type Teacher struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullName" db:"full_name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
