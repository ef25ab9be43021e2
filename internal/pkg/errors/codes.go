package errors

import "net/http"

var (
	ErrRoadNotFound = New(
		"ROAD_NOT_FOUND",
		"Road not found",
		http.StatusNotFound,
	)

	ErrRoadSensorNotFound = New(
		"ROAD_SENSOR_NOT_FOUND",
		"Road sensor not found",
		http.StatusNotFound,
	)

	ErrStationNotFound = New(
		"SERVICE_STATION_NOT_FOUND",
		"Service station not found",
		http.StatusNotFound,
	)

	ErrSensorNotFound = New(
		"SENSOR_NOT_FOUND",
		"Sensor not found",
		http.StatusNotFound,
	)

	ErrServiceTypeNotFound = New(
		"SERVICE_TYPE_NOT_FOUND",
		"Service type not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"A user with this email already exists",
		http.StatusConflict,
	)

	ErrEmptyCredentials = New(
		"EMPTY_CREDENTIALS",
		"Email and password must not be empty",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Wrong email or password",
		http.StatusUnauthorized,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid authorization token",
		http.StatusUnauthorized,
	)

	ErrInvalidID = New(
		"INVALID_ID",
		"Invalid identifier",
		http.StatusBadRequest,
	)

	ErrInvalidState = New(
		"INVALID_STATE",
		"Query parameter 'state' is required and must be a boolean",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrRoadReference = New(
		"VALIDATION_ERROR",
		"Referenced road does not exist",
		http.StatusBadRequest,
	)

	ErrStationReference = New(
		"VALIDATION_ERROR",
		"Referenced service station does not exist",
		http.StatusBadRequest,
	)

	ErrServiceTypeReference = New(
		"VALIDATION_ERROR",
		"Referenced service type does not exist",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
