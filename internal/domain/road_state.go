package domain

const (
	RoadStateAvailable = "available"
	RoadStateJam       = "jam"
)

// RoadState classifies a road by the cumulative state changes of its
// sensors. Reaching the availability threshold already counts as a jam.
func RoadState(sensors []*RoadSensor, availability int) string {
	totalAmount := 0
	for _, sensor := range sensors {
		totalAmount += sensor.AmountOfStateChanges
	}
	if totalAmount < availability {
		return RoadStateAvailable
	}
	return RoadStateJam
}
