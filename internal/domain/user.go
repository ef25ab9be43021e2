package domain

import (
	"time"

	"github.com/google/uuid"
)

// User - учетная запись. Password хранит только bcrypt-хеш и никогда не
// сериализуется в ответах.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
