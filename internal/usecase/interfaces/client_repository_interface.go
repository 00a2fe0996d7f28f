package interfaces

import (
	"context"

	"agencydesk/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}
