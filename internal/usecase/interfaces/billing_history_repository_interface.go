package interfaces

import (
	"context"

	"agencydesk/internal/domain/entities"
)

// IBillingHistoryRepository abstracts DynamoDB persistence for the append-only
// billing history ledger.
//
// ListByDeliverableID returns entries in ChangedAt ascending order (display
// order). UpdateAmountNotesByID touches amount and notes only; ChangedAt and
// Status are immutable once written.

type IBillingHistoryRepository interface {
	Create(ctx context.Context, e entities.BillingHistoryEntry) (entities.BillingHistoryEntry, error)
	GetByID(ctx context.Context, id string) (entities.BillingHistoryEntry, error)
	ListByDeliverableID(ctx context.Context, deliverableID string) ([]entities.BillingHistoryEntry, error)
	UpdateAmountNotesByID(ctx context.Context, id string, amount float64, notes string) (entities.BillingHistoryEntry, error)
	DeleteByID(ctx context.Context, id string) error
}
