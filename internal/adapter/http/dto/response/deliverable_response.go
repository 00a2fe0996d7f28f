package response

import (
	"time"

	"agencydesk/internal/domain/entities"
)

type DeliverableResponse struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id,omitempty"`
	ClientID        string    `json:"client_id,omitempty"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	BillingStatus   string    `json:"billing_status"`
	Price           float64   `json:"price"`
	SubcontractCost float64   `json:"subcontract_cost"`
	QuoteAmount     float64   `json:"quote_amount"`
	DepositAmount   float64   `json:"deposit_amount"`
	ProgressAmounts []float64 `json:"progress_amounts,omitempty"`
	BalanceAmount   float64   `json:"balance_amount"`
	TotalInvoiced   float64   `json:"total_invoiced"`
	PotentialMargin float64   `json:"potential_margin"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromDeliverable(d entities.Deliverable) DeliverableResponse {
	return DeliverableResponse{
		ID:              d.ID,
		ProjectID:       d.ProjectID,
		ClientID:        d.ClientID,
		Name:            d.Name,
		Status:          string(d.Status),
		BillingStatus:   string(d.BillingStatus),
		Price:           d.Price,
		SubcontractCost: d.SubcontractCost,
		QuoteAmount:     d.QuoteAmount,
		DepositAmount:   d.DepositAmount,
		ProgressAmounts: d.ProgressAmounts,
		BalanceAmount:   d.BalanceAmount,
		TotalInvoiced:   d.TotalInvoiced,
		PotentialMargin: d.PotentialMargin,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func FromDeliverables(ds []entities.Deliverable) []DeliverableResponse {
	out := make([]DeliverableResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDeliverable(d))
	}
	return out
}
