package request

type AddHistoryEntryRequest struct {
	DeliverableID string  `json:"deliverable_id" binding:"required"`
	Status        string  `json:"status" binding:"required"`
	Amount        float64 `json:"amount"`
	Notes         string  `json:"notes"`
	ChangedBy     string  `json:"changed_by"`
}

// UpdateHistoryEntryRequest edits a past entry's amount and notes. The stage
// and timestamp of an entry never change after the fact.
type UpdateHistoryEntryRequest struct {
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes"`
}
