package dto

// RoadStateResponse - результат классификации состояния дороги
type RoadStateResponse struct {
	State string `json:"state"` // "available" or "jam"
}

// LoginResponse - результат входа. Token присутствует только когда
// включена выдача токенов (AUTH_ENABLED).
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
