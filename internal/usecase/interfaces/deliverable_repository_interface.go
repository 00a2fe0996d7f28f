package interfaces

import (
	"context"

	"agencydesk/internal/domain/entities"
)

// IDeliverableRepository abstracts DynamoDB persistence for Deliverable.
//
// Notes:
//   - "not found" is reported as the zero entity, not an error; usecases
//     translate it into their sentinel errors.
//   - TotalInvoiced is only ever written through UpdateTotalInvoicedByID, which
//     keeps it a pure derivation of the billing history ledger.
//   - Deliverables are never deleted here; removal is an external concern.

type IDeliverableRepository interface {
	Create(ctx context.Context, d entities.Deliverable) (entities.Deliverable, error)
	GetByID(ctx context.Context, id string) (entities.Deliverable, error)
	List(ctx context.Context) ([]entities.Deliverable, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Deliverable, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.DeliverableStatus) (entities.Deliverable, error)
	UpdateBillingByID(ctx context.Context, id string, billing entities.BillingStatus, price float64, status entities.DeliverableStatus) (entities.Deliverable, error)
	UpdateTotalInvoicedByID(ctx context.Context, id string, total float64) (entities.Deliverable, error)
}
