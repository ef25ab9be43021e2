package domain

// Statistics - количество записей по каждой сущности
type Statistics struct {
	Roads           int `json:"roads"`
	RoadSensors     int `json:"road_sensors"`
	ServiceStations int `json:"service_stations"`
	Sensors         int `json:"sensors"`
	ServiceTypes    int `json:"service_types"`
	Users           int `json:"users"`
}
