package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"agencydesk/internal/domain/billing"
	"agencydesk/internal/domain/entities"
	"agencydesk/internal/domain/production"
	"agencydesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDeliverableNotFound    = errors.New("deliverable not found")
	ErrInvalidDeliverableID   = errors.New("invalid deliverable id")
	ErrInvalidDeliverableName = errors.New("invalid deliverable name")
	ErrInvalidTargetStatus    = errors.New("invalid target status")
	ErrInvalidBillingStatus   = errors.New("invalid billing status")
)

// TransitionDeniedError reports a refused direct move together with the fixed
// denial reason from the guard, so callers can surface it to the user.

type TransitionDeniedError struct {
	Reason production.DenialReason
}

func (e *TransitionDeniedError) Error() string {
	return "transition denied: " + string(e.Reason)
}

// CreateDeliverableCommand carries the fields captured by the creation form.

type CreateDeliverableCommand struct {
	Name            string
	ProjectID       string
	ClientID        string
	Price           float64
	SubcontractCost float64
	PotentialMargin float64
}

// BillingEditCommand carries the fields captured by the guarded edit form: the
// new billing stage and price, plus the amount/notes recorded in the billing
// history for this edit.

type BillingEditCommand struct {
	BillingStatus entities.BillingStatus
	Price         float64
	Amount        float64
	Notes         string
	ChangedBy     string
}

// IDeliverableUseCase exposes deliverable operations.
//
// Move is the direct-manipulation path (kanban drag): it consults the guard
// and commits the target status unchanged or refuses. ApplyBillingEdit is the
// guarded path: it runs the cascade, persists billing/price plus any status
// override, and appends the billing history entry for the edit.

type IDeliverableUseCase interface {
	Create(ctx context.Context, cmd CreateDeliverableCommand) (entities.Deliverable, error)
	GetByID(ctx context.Context, id string) (entities.Deliverable, error)
	List(ctx context.Context) ([]entities.Deliverable, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Deliverable, error)
	Move(ctx context.Context, id string, target entities.DeliverableStatus) (entities.Deliverable, error)
	ApplyBillingEdit(ctx context.Context, id string, cmd BillingEditCommand) (entities.Deliverable, error)
}

type DeliverableUseCase struct {
	repo        interfaces.IDeliverableRepository
	projectRepo interfaces.IProjectRepository
	historyRepo interfaces.IBillingHistoryRepository
}

var _ IDeliverableUseCase = (*DeliverableUseCase)(nil)

func NewDeliverableUseCase(repo interfaces.IDeliverableRepository, projectRepo interfaces.IProjectRepository, historyRepo interfaces.IBillingHistoryRepository) *DeliverableUseCase {
	return &DeliverableUseCase{repo: repo, projectRepo: projectRepo, historyRepo: historyRepo}
}

func (u *DeliverableUseCase) Create(ctx context.Context, cmd CreateDeliverableCommand) (entities.Deliverable, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Deliverable{}, ErrInvalidDeliverableName
	}

	// New deliverables start at the quoting boundary; the cascade immediately
	// advances priced ones to pending (a priced item is never to_quote).
	status := entities.DeliverableStatusToQuote
	if override, ok := production.ResolveCascade(status, entities.BillingStatusPending, cmd.Price); ok {
		status = override
	}

	now := time.Now().UTC()
	d := entities.Deliverable{
		ID:              uuid.NewString(),
		ProjectID:       strings.TrimSpace(cmd.ProjectID),
		ClientID:        strings.TrimSpace(cmd.ClientID),
		Name:            name,
		Status:          status,
		BillingStatus:   entities.BillingStatusPending,
		Price:           cmd.Price,
		SubcontractCost: cmd.SubcontractCost,
		PotentialMargin: cmd.PotentialMargin,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, d)
}

func (u *DeliverableUseCase) GetByID(ctx context.Context, id string) (entities.Deliverable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deliverable{}, ErrInvalidDeliverableID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deliverable{}, err
	}
	if d.ID == "" {
		return entities.Deliverable{}, ErrDeliverableNotFound
	}
	return d, nil
}

func (u *DeliverableUseCase) List(ctx context.Context) ([]entities.Deliverable, error) {
	return u.repo.List(ctx)
}

func (u *DeliverableUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Deliverable, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *DeliverableUseCase) Move(ctx context.Context, id string, target entities.DeliverableStatus) (entities.Deliverable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deliverable{}, ErrInvalidDeliverableID
	}
	if !isValidDeliverableStatus(target) {
		return entities.Deliverable{}, ErrInvalidTargetStatus
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deliverable{}, err
	}
	if d.ID == "" {
		return entities.Deliverable{}, ErrDeliverableNotFound
	}

	// The guard judges a single consistent snapshot: status, billing, price
	// and the owning project's quote, read together before deciding.
	projectQuote := 0.0
	if d.ProjectID != "" {
		p, err := u.projectRepo.GetByID(ctx, d.ProjectID)
		if err != nil {
			return entities.Deliverable{}, err
		}
		projectQuote = p.QuoteAmount
	}

	decision := production.CanTransition(production.TransitionContext{
		Current:            d.Status,
		Billing:            d.BillingStatus,
		Price:              d.Price,
		ProjectQuoteAmount: projectQuote,
	}, target)
	if !decision.Allowed {
		log.Printf("[deliverable][usecase] move denied id=%s current=%s target=%s reason=%q", d.ID, d.Status, target, decision.Reason)
		return entities.Deliverable{}, &TransitionDeniedError{Reason: decision.Reason}
	}

	if target == d.Status {
		return d, nil
	}

	log.Printf("[deliverable][usecase] move id=%s %s -> %s", d.ID, d.Status, target)
	return u.repo.UpdateStatusByID(ctx, id, target)
}

func (u *DeliverableUseCase) ApplyBillingEdit(ctx context.Context, id string, cmd BillingEditCommand) (entities.Deliverable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deliverable{}, ErrInvalidDeliverableID
	}
	if !isValidBillingStatus(cmd.BillingStatus) {
		return entities.Deliverable{}, ErrInvalidBillingStatus
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deliverable{}, err
	}
	if d.ID == "" {
		return entities.Deliverable{}, ErrDeliverableNotFound
	}

	// The cascade sees the pre-edit status and the new billing/price; the new
	// billing and price are persisted regardless of any override.
	status := d.Status
	if override, ok := production.ResolveCascade(d.Status, cmd.BillingStatus, cmd.Price); ok {
		log.Printf("[deliverable][usecase] billing edit cascade id=%s %s -> %s billing=%s price=%v", d.ID, d.Status, override, cmd.BillingStatus, cmd.Price)
		status = override
	}

	updated, err := u.repo.UpdateBillingByID(ctx, id, cmd.BillingStatus, cmd.Price, status)
	if err != nil {
		return entities.Deliverable{}, err
	}
	if updated.ID == "" {
		return entities.Deliverable{}, ErrDeliverableNotFound
	}

	// Each billing-stage edit lands in the ledger; the recorded amount (if
	// any) flows into TotalInvoiced through the recompute.
	entry := entities.BillingHistoryEntry{
		ID:            uuid.NewString(),
		DeliverableID: updated.ID,
		Status:        cmd.BillingStatus,
		Amount:        cmd.Amount,
		Notes:         cmd.Notes,
		ChangedAt:     time.Now().UTC(),
		ChangedBy:     strings.TrimSpace(cmd.ChangedBy),
	}
	if _, err := u.historyRepo.Create(ctx, entry); err != nil {
		return entities.Deliverable{}, err
	}

	entries, err := u.historyRepo.ListByDeliverableID(ctx, updated.ID)
	if err != nil {
		return entities.Deliverable{}, err
	}
	return u.repo.UpdateTotalInvoicedByID(ctx, updated.ID, billing.SumInvoiced(entries))
}

func isValidDeliverableStatus(s entities.DeliverableStatus) bool {
	switch s {
	case entities.DeliverableStatusToQuote, entities.DeliverableStatusPending,
		entities.DeliverableStatusInProgress, entities.DeliverableStatusCompleted:
		return true
	}
	return false
}

func isValidBillingStatus(s entities.BillingStatus) bool {
	switch s {
	case entities.BillingStatusPending, entities.BillingStatusDeposit,
		entities.BillingStatusProgress, entities.BillingStatusBalance:
		return true
	}
	return false
}
