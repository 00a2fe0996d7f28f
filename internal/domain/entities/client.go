package entities

import "time"

// Client is an agency customer owning projects and deliverables.
//
// Storage model (DynamoDB):
//   - PK: id

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
