package domain

import "time"

// ServiceType - тип сервисной станции
type ServiceType struct {
	ID        int       `json:"id" db:"id"`
	TypeName  string    `json:"typeName" db:"type_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
