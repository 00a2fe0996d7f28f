package response

import (
	"time"

	"agencydesk/internal/domain/entities"
)

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClient(c))
	}
	return out
}
