package interfaces

import (
	"context"
	"time"

	"agencydesk/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error)
	UpdateQuoteAmountByID(ctx context.Context, id string, amount float64) (entities.Project, error)
	UpdatePaymentsByID(ctx context.Context, id string, deposit float64, progress []float64, balanceDate *time.Time) (entities.Project, error)
}
