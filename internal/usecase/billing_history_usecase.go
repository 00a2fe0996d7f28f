package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"agencydesk/internal/domain/billing"
	"agencydesk/internal/domain/entities"
	"agencydesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrHistoryEntryNotFound   = errors.New("billing history entry not found")
	ErrInvalidHistoryEntryID  = errors.New("invalid billing history entry id")
	ErrInvalidHistoryDelivID  = errors.New("invalid billing history deliverable id")
	ErrInvalidHistoryBillStat = errors.New("invalid billing history status")
)

// IBillingHistoryUseCase is the append-only billing ledger of a deliverable.
//
// Every mutation recomputes the owning deliverable's TotalInvoiced as the sum
// of its remaining entry amounts, so the stored total is always a derivation
// of the ledger and never an edited field.

type IBillingHistoryUseCase interface {
	AddEntry(ctx context.Context, deliverableID string, status entities.BillingStatus, amount float64, notes, changedBy string) (entities.BillingHistoryEntry, error)
	UpdateEntry(ctx context.Context, entryID string, amount float64, notes string) (entities.BillingHistoryEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	ListByDeliverable(ctx context.Context, deliverableID string) ([]entities.BillingHistoryEntry, error)
}

type BillingHistoryUseCase struct {
	repo            interfaces.IBillingHistoryRepository
	deliverableRepo interfaces.IDeliverableRepository
}

var _ IBillingHistoryUseCase = (*BillingHistoryUseCase)(nil)

func NewBillingHistoryUseCase(repo interfaces.IBillingHistoryRepository, deliverableRepo interfaces.IDeliverableRepository) *BillingHistoryUseCase {
	return &BillingHistoryUseCase{repo: repo, deliverableRepo: deliverableRepo}
}

func (u *BillingHistoryUseCase) AddEntry(ctx context.Context, deliverableID string, status entities.BillingStatus, amount float64, notes, changedBy string) (entities.BillingHistoryEntry, error) {
	deliverableID = strings.TrimSpace(deliverableID)
	if deliverableID == "" {
		return entities.BillingHistoryEntry{}, ErrInvalidHistoryDelivID
	}
	if !isValidBillingStatus(status) {
		return entities.BillingHistoryEntry{}, ErrInvalidHistoryBillStat
	}

	d, err := u.deliverableRepo.GetByID(ctx, deliverableID)
	if err != nil {
		return entities.BillingHistoryEntry{}, err
	}
	if d.ID == "" {
		return entities.BillingHistoryEntry{}, ErrDeliverableNotFound
	}

	e := entities.BillingHistoryEntry{
		ID:            uuid.NewString(),
		DeliverableID: deliverableID,
		Status:        status,
		Amount:        amount,
		Notes:         notes,
		ChangedAt:     time.Now().UTC(),
		ChangedBy:     strings.TrimSpace(changedBy),
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.BillingHistoryEntry{}, err
	}
	log.Printf("[history][usecase] entry added id=%s deliverable_id=%s status=%s amount=%v", created.ID, deliverableID, status, amount)

	if err := u.recompute(ctx, deliverableID); err != nil {
		return entities.BillingHistoryEntry{}, err
	}
	return created, nil
}

func (u *BillingHistoryUseCase) UpdateEntry(ctx context.Context, entryID string, amount float64, notes string) (entities.BillingHistoryEntry, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entities.BillingHistoryEntry{}, ErrInvalidHistoryEntryID
	}

	// ChangedAt and Status stay as written; only amount/notes are editable.
	updated, err := u.repo.UpdateAmountNotesByID(ctx, entryID, amount, notes)
	if err != nil {
		return entities.BillingHistoryEntry{}, err
	}
	if updated.ID == "" {
		return entities.BillingHistoryEntry{}, ErrHistoryEntryNotFound
	}

	if err := u.recompute(ctx, updated.DeliverableID); err != nil {
		return entities.BillingHistoryEntry{}, err
	}
	return updated, nil
}

func (u *BillingHistoryUseCase) DeleteEntry(ctx context.Context, entryID string) error {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return ErrInvalidHistoryEntryID
	}

	e, err := u.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if e.ID == "" {
		return ErrHistoryEntryNotFound
	}

	// Deletion removes one entry and nothing else; the other entries and
	// their statuses are never rewritten.
	if err := u.repo.DeleteByID(ctx, entryID); err != nil {
		return err
	}
	log.Printf("[history][usecase] entry deleted id=%s deliverable_id=%s", entryID, e.DeliverableID)

	return u.recompute(ctx, e.DeliverableID)
}

func (u *BillingHistoryUseCase) ListByDeliverable(ctx context.Context, deliverableID string) ([]entities.BillingHistoryEntry, error) {
	deliverableID = strings.TrimSpace(deliverableID)
	if deliverableID == "" {
		return nil, ErrInvalidHistoryDelivID
	}
	return u.repo.ListByDeliverableID(ctx, deliverableID)
}

func (u *BillingHistoryUseCase) recompute(ctx context.Context, deliverableID string) error {
	entries, err := u.repo.ListByDeliverableID(ctx, deliverableID)
	if err != nil {
		return err
	}
	total := billing.SumInvoiced(entries)
	if _, err := u.deliverableRepo.UpdateTotalInvoicedByID(ctx, deliverableID, total); err != nil {
		return err
	}
	log.Printf("[history][usecase] total invoiced recomputed deliverable_id=%s total=%v", deliverableID, total)
	return nil
}
