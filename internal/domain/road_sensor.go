package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoadSensor - датчик, встроенный в дорожное полотно
type RoadSensor struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	IsOverlaped          bool      `json:"isOverlaped" db:"is_overlaped"`
	RoadID               uuid.UUID `json:"roadId" db:"road_id"` // immutable after creation
	AmountOfStateChanges int       `json:"amountOfStateChanges" db:"amount_of_state_changes"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
}

// ApplyOverlap sets the overlap flag. Only an overlapped->clear transition
// counts as a state change; clear->overlapped does not bump the counter.
func (s *RoadSensor) ApplyOverlap(newState bool) {
	if s.IsOverlaped && !newState {
		s.AmountOfStateChanges++
	}
	s.IsOverlaped = newState
}

// ResetStateChanges zeroes the counter, leaving the overlap flag as is.
func (s *RoadSensor) ResetStateChanges() {
	s.AmountOfStateChanges = 0
}
