package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"agencydesk/internal/domain/entities"
	mock_interfaces "agencydesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBillingHistoryUseCase_AddEntry(t *testing.T) {
	t.Run("invalid deliverable id", func(t *testing.T) {
		uc := NewBillingHistoryUseCase(nil, nil)
		_, err := uc.AddEntry(context.Background(), " ", entities.BillingStatusDeposit, 100, "", "")
		if !errors.Is(err, ErrInvalidHistoryDelivID) {
			t.Fatalf("expected ErrInvalidHistoryDelivID, got %v", err)
		}
	})

	t.Run("invalid billing status", func(t *testing.T) {
		uc := NewBillingHistoryUseCase(nil, nil)
		_, err := uc.AddEntry(context.Background(), "d-1", "closed", 100, "", "")
		if !errors.Is(err, ErrInvalidHistoryBillStat) {
			t.Fatalf("expected ErrInvalidHistoryBillStat, got %v", err)
		}
	})

	t.Run("unknown deliverable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deliverableRepo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewBillingHistoryUseCase(nil, deliverableRepo)

		deliverableRepo.EXPECT().GetByID(gomock.Any(), "d-404").Return(entities.Deliverable{}, nil)

		_, err := uc.AddEntry(context.Background(), "d-404", entities.BillingStatusDeposit, 100, "", "")
		if !errors.Is(err, ErrDeliverableNotFound) {
			t.Fatalf("expected ErrDeliverableNotFound, got %v", err)
		}
	})

	t.Run("append recomputes total invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingHistoryRepository(ctrl)
		deliverableRepo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewBillingHistoryUseCase(repo, deliverableRepo)

		deliverableRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{ID: "d-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingHistoryEntry{})).DoAndReturn(
			func(_ context.Context, e entities.BillingHistoryEntry) (entities.BillingHistoryEntry, error) {
				if e.ID == "" || e.DeliverableID != "d-1" || e.Status != entities.BillingStatusDeposit || e.Amount != 1500 {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.ChangedAt.IsZero() || e.ChangedBy != "marc" {
					t.Fatalf("expected timestamp and author: %+v", e)
				}
				return e, nil
			},
		)
		repo.EXPECT().ListByDeliverableID(gomock.Any(), "d-1").Return([]entities.BillingHistoryEntry{
			{Amount: 1000}, {Amount: 1500},
		}, nil)
		deliverableRepo.EXPECT().UpdateTotalInvoicedByID(gomock.Any(), "d-1", 2500.0).
			Return(entities.Deliverable{ID: "d-1", TotalInvoiced: 2500}, nil)

		res, err := uc.AddEntry(context.Background(), "d-1", entities.BillingStatusDeposit, 1500, "deposit wired", " marc ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestBillingHistoryUseCase_UpdateEntry(t *testing.T) {
	t.Run("invalid entry id", func(t *testing.T) {
		uc := NewBillingHistoryUseCase(nil, nil)
		_, err := uc.UpdateEntry(context.Background(), " ", 100, "")
		if !errors.Is(err, ErrInvalidHistoryEntryID) {
			t.Fatalf("expected ErrInvalidHistoryEntryID, got %v", err)
		}
	})

	t.Run("unknown entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingHistoryRepository(ctrl)
		uc := NewBillingHistoryUseCase(repo, nil)

		repo.EXPECT().UpdateAmountNotesByID(gomock.Any(), "e-404", 100.0, "").Return(entities.BillingHistoryEntry{}, nil)

		_, err := uc.UpdateEntry(context.Background(), "e-404", 100, "")
		if !errors.Is(err, ErrHistoryEntryNotFound) {
			t.Fatalf("expected ErrHistoryEntryNotFound, got %v", err)
		}
	})

	t.Run("update recomputes without touching changed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingHistoryRepository(ctrl)
		deliverableRepo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewBillingHistoryUseCase(repo, deliverableRepo)

		changedAt := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().UpdateAmountNotesByID(gomock.Any(), "e-1", 900.0, "corrected").Return(entities.BillingHistoryEntry{
			ID: "e-1", DeliverableID: "d-1", Status: entities.BillingStatusDeposit, Amount: 900, Notes: "corrected", ChangedAt: changedAt,
		}, nil)
		repo.EXPECT().ListByDeliverableID(gomock.Any(), "d-1").Return([]entities.BillingHistoryEntry{
			{Amount: 900},
		}, nil)
		deliverableRepo.EXPECT().UpdateTotalInvoicedByID(gomock.Any(), "d-1", 900.0).
			Return(entities.Deliverable{ID: "d-1", TotalInvoiced: 900}, nil)

		res, err := uc.UpdateEntry(context.Background(), "e-1", 900, "corrected")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.ChangedAt.Equal(changedAt) {
			t.Fatalf("changed_at must be immutable, got %v", res.ChangedAt)
		}
	})
}

func TestBillingHistoryUseCase_DeleteEntry(t *testing.T) {
	t.Run("unknown entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingHistoryRepository(ctrl)
		uc := NewBillingHistoryUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "e-404").Return(entities.BillingHistoryEntry{}, nil)

		err := uc.DeleteEntry(context.Background(), "e-404")
		if !errors.Is(err, ErrHistoryEntryNotFound) {
			t.Fatalf("expected ErrHistoryEntryNotFound, got %v", err)
		}
	})

	t.Run("delete restores the pre-add total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingHistoryRepository(ctrl)
		deliverableRepo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewBillingHistoryUseCase(repo, deliverableRepo)

		repo.EXPECT().GetByID(gomock.Any(), "e-2").Return(entities.BillingHistoryEntry{
			ID: "e-2", DeliverableID: "d-1", Amount: 1500,
		}, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), "e-2").Return(nil)
		repo.EXPECT().ListByDeliverableID(gomock.Any(), "d-1").Return([]entities.BillingHistoryEntry{
			{ID: "e-1", Amount: 1000},
		}, nil)
		deliverableRepo.EXPECT().UpdateTotalInvoicedByID(gomock.Any(), "d-1", 1000.0).
			Return(entities.Deliverable{ID: "d-1", TotalInvoiced: 1000}, nil)

		if err := uc.DeleteEntry(context.Background(), "e-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo delete error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingHistoryRepository(ctrl)
		uc := NewBillingHistoryUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "e-2").Return(entities.BillingHistoryEntry{ID: "e-2", DeliverableID: "d-1"}, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), "e-2").Return(errors.New("db"))

		err := uc.DeleteEntry(context.Background(), "e-2")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
