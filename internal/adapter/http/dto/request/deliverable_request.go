package request

// CreateDeliverableRequest carries the deliverable creation form fields.
type CreateDeliverableRequest struct {
	Name            string  `json:"name" binding:"required"`
	ProjectID       string  `json:"project_id"`
	ClientID        string  `json:"client_id"`
	Price           float64 `json:"price"`
	SubcontractCost float64 `json:"subcontract_cost"`
	PotentialMargin float64 `json:"potential_margin"`
}

// MoveDeliverableRequest names the production status a drag targets.
type MoveDeliverableRequest struct {
	Status string `json:"status" binding:"required"`
}

// BillingEditRequest carries the guarded billing edit: the new billing stage
// and price, plus the amount/notes recorded in the billing history.
type BillingEditRequest struct {
	BillingStatus string  `json:"billing_status" binding:"required"`
	Price         float64 `json:"price"`
	Amount        float64 `json:"amount"`
	Notes         string  `json:"notes"`
	ChangedBy     string  `json:"changed_by"`
}
