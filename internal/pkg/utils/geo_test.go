package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/road-monitoring-service/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		d := utils.HaversineDistance(41.3851, 2.1734, 41.3851, 2.1734)
		assert.Zero(t, d)
	})

	t.Run("Barcelona to Madrid", func(t *testing.T) {
		// ~505 km great-circle
		d := utils.HaversineDistance(41.3851, 2.1734, 40.4168, -3.7038)
		assert.InDelta(t, 505, d, 5)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		// ~111.19 km anywhere on the meridian
		d := utils.HaversineDistance(0, 0, 1, 0)
		assert.InDelta(t, 111.19, d, 0.1)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := utils.HaversineDistance(55.7558, 37.6173, 59.9343, 30.3351)
		d2 := utils.HaversineDistance(59.9343, 30.3351, 55.7558, 37.6173)
		assert.InDelta(t, d1, d2, 1e-9)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(0, 0))
	assert.True(t, utils.ValidateCoordinates(90, 180))
	assert.True(t, utils.ValidateCoordinates(-90, -180))
	assert.False(t, utils.ValidateCoordinates(90.1, 0))
	assert.False(t, utils.ValidateCoordinates(-90.1, 0))
	assert.False(t, utils.ValidateCoordinates(0, 180.1))
	assert.False(t, utils.ValidateCoordinates(0, -180.1))
}
