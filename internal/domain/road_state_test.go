package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/road-monitoring-service/internal/domain"
)

func TestRoadState(t *testing.T) {
	tests := []struct {
		name         string
		counters     []int
		availability int
		want         string
	}{
		{
			name:         "total below availability",
			counters:     []int{1, 1},
			availability: 3,
			want:         domain.RoadStateAvailable,
		},
		{
			name:         "total equals availability",
			counters:     []int{1, 1},
			availability: 2,
			want:         domain.RoadStateJam,
		},
		{
			name:         "total above availability",
			counters:     []int{5, 3},
			availability: 2,
			want:         domain.RoadStateJam,
		},
		{
			name:         "no sensors",
			counters:     nil,
			availability: 1,
			want:         domain.RoadStateAvailable,
		},
		{
			name:         "zero availability is always jammed",
			counters:     nil,
			availability: 0,
			want:         domain.RoadStateJam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sensors := make([]*domain.RoadSensor, 0, len(tt.counters))
			for _, c := range tt.counters {
				sensors = append(sensors, &domain.RoadSensor{AmountOfStateChanges: c})
			}

			assert.Equal(t, tt.want, domain.RoadState(sensors, tt.availability))
		})
	}
}

func TestRoadSensor_ApplyOverlap(t *testing.T) {
	t.Run("overlapped to clear increments counter", func(t *testing.T) {
		s := &domain.RoadSensor{IsOverlaped: true, AmountOfStateChanges: 5}

		s.ApplyOverlap(false)

		assert.False(t, s.IsOverlaped)
		assert.Equal(t, 6, s.AmountOfStateChanges)
	})

	t.Run("clear to overlapped does not increment", func(t *testing.T) {
		s := &domain.RoadSensor{IsOverlaped: false, AmountOfStateChanges: 5}

		s.ApplyOverlap(true)

		assert.True(t, s.IsOverlaped)
		assert.Equal(t, 5, s.AmountOfStateChanges)
	})

	t.Run("same overlapped state does not increment", func(t *testing.T) {
		s := &domain.RoadSensor{IsOverlaped: true, AmountOfStateChanges: 5}

		s.ApplyOverlap(true)

		assert.True(t, s.IsOverlaped)
		assert.Equal(t, 5, s.AmountOfStateChanges)
	})

	t.Run("same clear state does not increment", func(t *testing.T) {
		s := &domain.RoadSensor{IsOverlaped: false, AmountOfStateChanges: 5}

		s.ApplyOverlap(false)

		assert.False(t, s.IsOverlaped)
		assert.Equal(t, 5, s.AmountOfStateChanges)
	})
}

func TestRoadSensor_ResetStateChanges(t *testing.T) {
	s := &domain.RoadSensor{IsOverlaped: true, AmountOfStateChanges: 42}

	s.ResetStateChanges()

	assert.Equal(t, 0, s.AmountOfStateChanges)
	assert.True(t, s.IsOverlaped, "reset must not touch the overlap flag")
}
