package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceStation - сервисная станция (АЗС, парковка и т.д.)
type ServiceStation struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Type        int       `json:"type" db:"type"` // service type reference, not touched by generic update
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
