package request

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Notes   string `json:"notes"`
}
