package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"agencydesk/internal/domain/entities"
	"agencydesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientName = errors.New("invalid client name")
)

// IClientUseCase exposes client record operations.

type IClientUseCase interface {
	Create(ctx context.Context, name, company, email, notes string) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, name, company, email, notes string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Company:   strings.TrimSpace(company),
		Email:     strings.TrimSpace(email),
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}
