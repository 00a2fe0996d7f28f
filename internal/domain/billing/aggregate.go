// Package billing holds the pure financial rollup of a project and the
// invoiced-sum recompute backing the billing history ledger.
package billing

import (
	"math"

	"agencydesk/internal/domain/entities"
)

// balancedEpsilon absorbs rounding noise: a remaining amount below one cent
// counts as fully paid.
const balancedEpsilon = 0.01

// ProjectBillingStatus is the single financial status derived for a project.
// The ladder is "highest stage reached wins": balanced beats progress beats
// deposit beats quoted beats none.

type ProjectBillingStatus string

const (
	ProjectBillingNone     ProjectBillingStatus = "none"
	ProjectBillingQuoted   ProjectBillingStatus = "quoted"
	ProjectBillingDeposit  ProjectBillingStatus = "deposit"
	ProjectBillingProgress ProjectBillingStatus = "progress"
	ProjectBillingBalanced ProjectBillingStatus = "balanced"
)

// ProjectBilling is the rollup of a project's own payments plus the invoiced
// totals of its deliverables.

type ProjectBilling struct {
	Status               ProjectBillingStatus `json:"status"`
	TotalProductInvoiced float64              `json:"total_product_invoiced"`
	TotalProjectPayments float64              `json:"total_project_payments"`
	TotalPaid            float64              `json:"total_paid"`
	Remaining            float64              `json:"remaining"`
	ProgressPercent      int                  `json:"progress_percent"`
}

// ComputeBilling rolls the project's deposit, progress payments and (once
// BalanceDate is set) its settling balance together with the invoiced totals
// of the given deliverables. Callers pass the deliverables currently attached
// to the project; no caching is implied.
func ComputeBilling(p entities.Project, deliverables []entities.Deliverable) ProjectBilling {
	product := 0.0
	for _, d := range deliverables {
		if d.TotalInvoiced > 0 {
			product += d.TotalInvoiced
		}
	}

	payments := 0.0
	if p.DepositAmount > 0 {
		payments += p.DepositAmount
	}
	anyProgress := false
	for _, a := range p.ProgressAmounts {
		if a > 0 {
			payments += a
			anyProgress = true
		}
	}

	// The balance has no amount of its own: setting BalanceDate settles
	// whatever is left of the quote at that point.
	if p.BalanceDate != nil {
		payments += math.Max(0, p.QuoteAmount-(payments+product))
	}

	totalPaid := product + payments
	remaining := math.Max(0, p.QuoteAmount-totalPaid)

	percent := 0
	if p.QuoteAmount > 0 {
		percent = int(math.Round(100 * totalPaid / p.QuoteAmount))
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
	}

	status := ProjectBillingQuoted
	switch {
	case p.QuoteAmount <= 0:
		status = ProjectBillingNone
	case remaining <= balancedEpsilon:
		status = ProjectBillingBalanced
	case anyProgress:
		status = ProjectBillingProgress
	case p.DepositAmount > 0:
		status = ProjectBillingDeposit
	}

	return ProjectBilling{
		Status:               status,
		TotalProductInvoiced: product,
		TotalProjectPayments: payments,
		TotalPaid:            totalPaid,
		Remaining:            remaining,
		ProgressPercent:      percent,
	}
}
