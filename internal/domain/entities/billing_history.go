package entities

import "time"

// BillingHistoryEntry is an append-only audit record of a billing event on a
// deliverable.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (deliverable_id-index): deliverable_id
//
// Entries are displayed in ChangedAt ascending order. Amount <= 0 means the
// event carried no invoiced amount; the deliverable's TotalInvoiced is the sum
// of all entry amounts and is recomputed after every ledger operation.

type BillingHistoryEntry struct {
	ID            string        `json:"id"`
	DeliverableID string        `json:"deliverable_id"`
	Status        BillingStatus `json:"status"`
	Amount        float64       `json:"amount,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	ChangedAt     time.Time     `json:"changed_at"`
	ChangedBy     string        `json:"changed_by,omitempty"`
}
