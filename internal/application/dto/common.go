package dto

import "time"

// ErrorResponse cuerpo de error HTTP (fuera de GraphQL: health, 401 del middleware).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FormatTime representación de fechas en la API.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
