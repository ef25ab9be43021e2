package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sensor - датчик занятости места на сервисной станции
type Sensor struct {
	ID           uuid.UUID `json:"id" db:"id"`
	IsEmptyPlace bool      `json:"isEmptyPlace" db:"is_empty_place"`
	OwnerID      uuid.UUID `json:"ownerId" db:"owner_id"` // immutable after creation
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
