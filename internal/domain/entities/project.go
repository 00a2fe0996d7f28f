package entities

import "time"

// ProjectPaymentKind identifies the stage of a payment recorded directly on a
// project (as opposed to amounts invoiced on its deliverables).

type ProjectPaymentKind string

const (
	ProjectPaymentDeposit  ProjectPaymentKind = "deposit"
	ProjectPaymentProgress ProjectPaymentKind = "progress"
	ProjectPaymentBalance  ProjectPaymentKind = "balance"
)

// Project is a client-facing grouping of deliverables sharing one overall quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// BalanceDate marks the final settlement: once set, the project's remaining
// balance counts as paid (see internal/domain/billing).

type Project struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Name     string `json:"name"`

	QuoteAmount     float64    `json:"quote_amount,omitempty"`
	DepositAmount   float64    `json:"deposit_amount,omitempty"`
	ProgressAmounts []float64  `json:"progress_amounts,omitempty"`
	BalanceDate     *time.Time `json:"balance_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
