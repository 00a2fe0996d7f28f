package entities

import "time"

// DeliverableStatus represents the production stage of a deliverable.
//
// Domain notes:
//   - completed is entered and left only through the guarded edit flow
//     (see internal/domain/production); the kanban move path can never
//     create or remove it.
//   - to_quote / pending form the quoting boundary: a deliverable with a
//     positive invoiced price is never legitimately pending a quote.

type DeliverableStatus string

const (
	DeliverableStatusToQuote    DeliverableStatus = "to_quote"
	DeliverableStatusPending    DeliverableStatus = "pending"
	DeliverableStatusInProgress DeliverableStatus = "in_progress"
	DeliverableStatusCompleted  DeliverableStatus = "completed"
)

// BillingStatus represents the invoicing stage of a deliverable.

type BillingStatus string

const (
	BillingStatusPending  BillingStatus = "pending"
	BillingStatusDeposit  BillingStatus = "deposit"
	BillingStatusProgress BillingStatus = "progress"
	BillingStatusBalance  BillingStatus = "balance"
)

// Deliverable is a single billable/produced unit of agency work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Monetary representation:
//   - Amounts are float64; any value <= 0 is treated as "no amount" by the
//     production/billing core.
//   - TotalInvoiced is always derived from the deliverable's billing history
//     entries, never edited directly.

type Deliverable struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id,omitempty"`
	ClientID  string `json:"client_id,omitempty"`
	Name      string `json:"name"`

	Status        DeliverableStatus `json:"status"`
	BillingStatus BillingStatus     `json:"billing_status"`

	Price           float64 `json:"price,omitempty"`
	SubcontractCost float64 `json:"subcontract_cost,omitempty"`

	QuoteAmount     float64   `json:"quote_amount,omitempty"`
	DepositAmount   float64   `json:"deposit_amount,omitempty"`
	ProgressAmounts []float64 `json:"progress_amounts,omitempty"`
	BalanceAmount   float64   `json:"balance_amount,omitempty"`
	TotalInvoiced   float64   `json:"total_invoiced"`

	// PotentialMargin is a free-form planning figure; it takes no part in
	// status or billing decisions.
	PotentialMargin float64 `json:"potential_margin,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
