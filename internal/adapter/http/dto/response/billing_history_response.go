package response

import (
	"time"

	"agencydesk/internal/domain/entities"
)

type BillingHistoryEntryResponse struct {
	ID            string    `json:"id"`
	DeliverableID string    `json:"deliverable_id"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	Notes         string    `json:"notes,omitempty"`
	ChangedAt     time.Time `json:"changed_at"`
	ChangedBy     string    `json:"changed_by,omitempty"`
}

func FromBillingHistoryEntry(e entities.BillingHistoryEntry) BillingHistoryEntryResponse {
	return BillingHistoryEntryResponse{
		ID:            e.ID,
		DeliverableID: e.DeliverableID,
		Status:        string(e.Status),
		Amount:        e.Amount,
		Notes:         e.Notes,
		ChangedAt:     e.ChangedAt,
		ChangedBy:     e.ChangedBy,
	}
}

func FromBillingHistoryEntries(es []entities.BillingHistoryEntry) []BillingHistoryEntryResponse {
	out := make([]BillingHistoryEntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromBillingHistoryEntry(e))
	}
	return out
}
