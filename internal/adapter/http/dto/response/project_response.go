package response

import (
	"time"

	"agencydesk/internal/domain/billing"
	"agencydesk/internal/domain/entities"
)

type ProjectResponse struct {
	ID              string     `json:"id"`
	ClientID        string     `json:"client_id"`
	Name            string     `json:"name"`
	QuoteAmount     float64    `json:"quote_amount"`
	DepositAmount   float64    `json:"deposit_amount"`
	ProgressAmounts []float64  `json:"progress_amounts,omitempty"`
	BalanceDate     *time.Time `json:"balance_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		ClientID:        p.ClientID,
		Name:            p.Name,
		QuoteAmount:     p.QuoteAmount,
		DepositAmount:   p.DepositAmount,
		ProgressAmounts: p.ProgressAmounts,
		BalanceDate:     p.BalanceDate,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

// ProjectBillingResponse is the rollup consumed by progress bars and the
// project billing panel.
type ProjectBillingResponse struct {
	Project              ProjectResponse `json:"project"`
	BillingStatus        string          `json:"billing_status"`
	TotalProductInvoiced float64         `json:"total_product_invoiced"`
	TotalProjectPayments float64         `json:"total_project_payments"`
	TotalPaid            float64         `json:"total_paid"`
	Remaining            float64         `json:"remaining"`
	ProgressPercent      int             `json:"progress_percent"`
}

func FromProjectBilling(p entities.Project, b billing.ProjectBilling) ProjectBillingResponse {
	return ProjectBillingResponse{
		Project:              FromProject(p),
		BillingStatus:        string(b.Status),
		TotalProductInvoiced: b.TotalProductInvoiced,
		TotalProjectPayments: b.TotalProjectPayments,
		TotalPaid:            b.TotalPaid,
		Remaining:            b.Remaining,
		ProgressPercent:      b.ProgressPercent,
	}
}

type ProjectPaymentResponse struct {
	Project           ProjectResponse `json:"project"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderStatus    string          `json:"provider_status,omitempty"`
}
