package billing

import "agencydesk/internal/domain/entities"

// SumInvoiced derives a deliverable's total invoiced amount from its billing
// history entries. Entries without an amount (<= 0) contribute nothing and the
// sum is order-independent, so the recompute can run after any add, edit or
// delete without replaying the ledger.
func SumInvoiced(entries []entities.BillingHistoryEntry) float64 {
	total := 0.0
	for _, e := range entries {
		if e.Amount > 0 {
			total += e.Amount
		}
	}
	return total
}
