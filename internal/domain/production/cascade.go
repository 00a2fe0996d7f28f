package production

import "agencydesk/internal/domain/entities"

// ResolveCascade derives the automatic status change that follows a guarded
// billing/price edit. It is called with the pre-edit status and the new
// billing stage and price, before anything is persisted.
//
// The rules stack within a single call, each one seeing the status left by the
// previous:
//
//  1. a priced to_quote item advances to pending
//  2. a pending item whose price was removed reverts to to_quote
//  3. reaching the balance stage completes the item (so one edit that both
//     sets a price and marks balance jumps to_quote -> completed)
//  4. leaving the balance stage un-completes a completed item to in_progress
//
// newPrice <= 0 means "no price". The function is pure, total and idempotent:
// re-applying it to its own result with the same inputs changes nothing.
func ResolveCascade(current entities.DeliverableStatus, newBilling entities.BillingStatus, newPrice float64) (entities.DeliverableStatus, bool) {
	status := current

	if status == entities.DeliverableStatusToQuote && newPrice > 0 {
		status = entities.DeliverableStatusPending
	}
	if status == entities.DeliverableStatusPending && newPrice <= 0 {
		status = entities.DeliverableStatusToQuote
	}
	if newBilling == entities.BillingStatusBalance && status != entities.DeliverableStatusCompleted {
		status = entities.DeliverableStatusCompleted
	}
	if newBilling != entities.BillingStatusBalance && status == entities.DeliverableStatusCompleted {
		status = entities.DeliverableStatusInProgress
	}

	return status, status != current
}
