package entity

import "time"

// Client representa un cliente del CRM. SalespersonID se fija al crear y no se reasigna.
type Client struct {
	ID            string
	FirstName     string
	LastName      string
	Company       string
	Email         string
	Phone         *string
	SalespersonID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
