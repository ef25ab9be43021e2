package domain

import (
	"time"

	"github.com/google/uuid"
)

// Road - участок дороги с настроенной пропускной способностью
type Road struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Address         string    `json:"address" db:"address"`
	Length          float64   `json:"length" db:"length"` // meters
	Description     string    `json:"description" db:"description"`
	MaxAllowedSpeed int       `json:"maxAllowedSpeed" db:"max_allowed_speed"`
	AmountOfLines   int       `json:"amountOfLines" db:"amount_of_lines"`
	Bandwidth       int       `json:"bandwidth" db:"bandwidth"` // jam threshold for the classifier
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
