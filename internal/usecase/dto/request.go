package dto

import "github.com/google/uuid"

// RoadRequest - тело запроса создания/замены дороги
type RoadRequest struct {
	Address         string  `json:"address" validate:"required"`
	Length          float64 `json:"length" validate:"gte=0"`
	Description     string  `json:"description"`
	MaxAllowedSpeed int     `json:"maxAllowedSpeed" validate:"gte=0"`
	AmountOfLines   int     `json:"amountOfLines" validate:"gte=0"`
	Bandwidth       int     `json:"bandwidth" validate:"gte=0"`
}

// RoadSensorRequest - тело запроса создания дорожного датчика
type RoadSensorRequest struct {
	IsOverlaped          bool      `json:"isOverlaped"`
	RoadID               uuid.UUID `json:"roadId" validate:"required"`
	AmountOfStateChanges int       `json:"amountOfStateChanges" validate:"gte=0"`
}

// CreateServiceStationRequest - тело запроса создания станции
type CreateServiceStationRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	Type        int     `json:"type" validate:"required"`
}

// UpdateServiceStationRequest - тело запроса замены станции.
// Тип сервиса назначается при создании и здесь отсутствует.
type UpdateServiceStationRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
}

// NearestStationsRequest - параметры фильтра ближайших станций.
// Range задается в километрах.
type NearestStationsRequest struct {
	Lat   float64
	Long  float64
	Type  int
	Range float64
}

// CreateSensorRequest - тело запроса создания датчика станции
type CreateSensorRequest struct {
	IsEmptyPlace bool      `json:"isEmptyPlace"`
	OwnerID      uuid.UUID `json:"ownerId" validate:"required"`
}

// UpdateSensorRequest - тело запроса замены датчика станции
type UpdateSensorRequest struct {
	IsEmptyPlace bool `json:"isEmptyPlace"`
}

// ServiceTypeRequest - тело запроса создания/замены типа сервиса
type ServiceTypeRequest struct {
	TypeName string `json:"typeName" validate:"required"`
}

// CredentialsRequest - email и пароль для регистрации и входа.
// Пустые значения отклоняет слой бизнес-логики.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
