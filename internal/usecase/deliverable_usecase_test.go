package usecase

import (
	"context"
	"errors"
	"testing"

	"agencydesk/internal/domain/entities"
	"agencydesk/internal/domain/production"
	mock_interfaces "agencydesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeliverableUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewDeliverableUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateDeliverableCommand{Name: "   "})
		if !errors.Is(err, ErrInvalidDeliverableName) {
			t.Fatalf("expected ErrInvalidDeliverableName, got %v", err)
		}
	})

	t.Run("unpriced deliverable starts in to_quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Deliverable{})).DoAndReturn(
			func(_ context.Context, d entities.Deliverable) (entities.Deliverable, error) {
				if d.ID == "" || d.Status != entities.DeliverableStatusToQuote || d.BillingStatus != entities.BillingStatusPending {
					t.Fatalf("unexpected deliverable: %+v", d)
				}
				if d.CreatedAt.IsZero() || d.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return d, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateDeliverableCommand{Name: " Logo refresh "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Logo refresh" {
			t.Fatalf("expected trimmed name, got %q", res.Name)
		}
	})

	t.Run("priced deliverable cascades straight to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Deliverable{})).DoAndReturn(
			func(_ context.Context, d entities.Deliverable) (entities.Deliverable, error) {
				if d.Status != entities.DeliverableStatusPending || d.Price != 1800 {
					t.Fatalf("unexpected deliverable: %+v", d)
				}
				return d, nil
			},
		)

		if _, err := uc.Create(context.Background(), CreateDeliverableCommand{Name: "Site", Price: 1800}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDeliverableUseCase_Move(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDeliverableUseCase(nil, nil, nil)
		_, err := uc.Move(context.Background(), " ", entities.DeliverableStatusPending)
		if !errors.Is(err, ErrInvalidDeliverableID) {
			t.Fatalf("expected ErrInvalidDeliverableID, got %v", err)
		}
	})

	t.Run("invalid target", func(t *testing.T) {
		uc := NewDeliverableUseCase(nil, nil, nil)
		_, err := uc.Move(context.Background(), "d-1", entities.DeliverableStatus("archived"))
		if !errors.Is(err, ErrInvalidTargetStatus) {
			t.Fatalf("expected ErrInvalidTargetStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{}, nil)

		_, err := uc.Move(context.Background(), "d-1", entities.DeliverableStatusPending)
		if !errors.Is(err, ErrDeliverableNotFound) {
			t.Fatalf("expected ErrDeliverableNotFound, got %v", err)
		}
	})

	t.Run("denied without price or project quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{
			ID:            "d-1",
			Status:        entities.DeliverableStatusToQuote,
			BillingStatus: entities.BillingStatusPending,
		}, nil)

		_, err := uc.Move(context.Background(), "d-1", entities.DeliverableStatusPending)
		var denied *TransitionDeniedError
		if !errors.As(err, &denied) {
			t.Fatalf("expected TransitionDeniedError, got %v", err)
		}
		if denied.Reason != production.DenialNeedsPriceOrProjectQuote {
			t.Fatalf("unexpected reason: %q", denied.Reason)
		}
	})

	t.Run("project quote unblocks the move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewDeliverableUseCase(repo, projectRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{
			ID:            "d-1",
			ProjectID:     "p-1",
			Status:        entities.DeliverableStatusToQuote,
			BillingStatus: entities.BillingStatusPending,
		}, nil)
		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", QuoteAmount: 10000}, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "d-1", entities.DeliverableStatusPending).Return(entities.Deliverable{
			ID:     "d-1",
			Status: entities.DeliverableStatusPending,
		}, nil)

		res, err := uc.Move(context.Background(), "d-1", entities.DeliverableStatusPending)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.DeliverableStatusPending {
			t.Fatalf("expected pending, got %s", res.Status)
		}
	})

	t.Run("completed wall on direct moves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{
			ID:            "d-1",
			Status:        entities.DeliverableStatusInProgress,
			BillingStatus: entities.BillingStatusProgress,
			Price:         900,
		}, nil)

		_, err := uc.Move(context.Background(), "d-1", entities.DeliverableStatusCompleted)
		var denied *TransitionDeniedError
		if !errors.As(err, &denied) {
			t.Fatalf("expected TransitionDeniedError, got %v", err)
		}
		if denied.Reason != production.DenialCompletedGuardedOnly {
			t.Fatalf("unexpected reason: %q", denied.Reason)
		}
	})

	t.Run("identity move persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{
			ID:     "d-1",
			Status: entities.DeliverableStatusInProgress,
			Price:  900,
		}, nil)

		res, err := uc.Move(context.Background(), "d-1", entities.DeliverableStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.DeliverableStatusInProgress {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})
}

func TestDeliverableUseCase_ApplyBillingEdit(t *testing.T) {
	t.Run("invalid billing status", func(t *testing.T) {
		uc := NewDeliverableUseCase(nil, nil, nil)
		_, err := uc.ApplyBillingEdit(context.Background(), "d-1", BillingEditCommand{BillingStatus: "paid"})
		if !errors.Is(err, ErrInvalidBillingStatus) {
			t.Fatalf("expected ErrInvalidBillingStatus, got %v", err)
		}
	})

	t.Run("balance edit completes and records history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		historyRepo := mock_interfaces.NewMockIBillingHistoryRepository(ctrl)
		uc := NewDeliverableUseCase(repo, nil, historyRepo)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{
			ID:            "d-1",
			Status:        entities.DeliverableStatusToQuote,
			BillingStatus: entities.BillingStatusPending,
		}, nil)
		// The cascade stacks: price unblocks to pending, balance completes.
		repo.EXPECT().UpdateBillingByID(gomock.Any(), "d-1", entities.BillingStatusBalance, 5000.0, entities.DeliverableStatusCompleted).
			Return(entities.Deliverable{ID: "d-1", Status: entities.DeliverableStatusCompleted, BillingStatus: entities.BillingStatusBalance, Price: 5000}, nil)
		historyRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingHistoryEntry{})).DoAndReturn(
			func(_ context.Context, e entities.BillingHistoryEntry) (entities.BillingHistoryEntry, error) {
				if e.DeliverableID != "d-1" || e.Status != entities.BillingStatusBalance || e.Amount != 2000 {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.ID == "" || e.ChangedAt.IsZero() {
					t.Fatalf("expected generated id and timestamp")
				}
				return e, nil
			},
		)
		historyRepo.EXPECT().ListByDeliverableID(gomock.Any(), "d-1").Return([]entities.BillingHistoryEntry{
			{Amount: 3000}, {Amount: 2000},
		}, nil)
		repo.EXPECT().UpdateTotalInvoicedByID(gomock.Any(), "d-1", 5000.0).
			Return(entities.Deliverable{ID: "d-1", Status: entities.DeliverableStatusCompleted, TotalInvoiced: 5000}, nil)

		res, err := uc.ApplyBillingEdit(context.Background(), "d-1", BillingEditCommand{
			BillingStatus: entities.BillingStatusBalance,
			Price:         5000,
			Amount:        2000,
			ChangedBy:     "lea",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalInvoiced != 5000 {
			t.Fatalf("expected recomputed total, got %v", res.TotalInvoiced)
		}
	})

	t.Run("no override still persists billing and price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		historyRepo := mock_interfaces.NewMockIBillingHistoryRepository(ctrl)
		uc := NewDeliverableUseCase(repo, nil, historyRepo)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{
			ID:            "d-1",
			Status:        entities.DeliverableStatusInProgress,
			BillingStatus: entities.BillingStatusDeposit,
			Price:         900,
		}, nil)
		repo.EXPECT().UpdateBillingByID(gomock.Any(), "d-1", entities.BillingStatusProgress, 900.0, entities.DeliverableStatusInProgress).
			Return(entities.Deliverable{ID: "d-1", Status: entities.DeliverableStatusInProgress}, nil)
		historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.BillingHistoryEntry) (entities.BillingHistoryEntry, error) { return e, nil },
		)
		historyRepo.EXPECT().ListByDeliverableID(gomock.Any(), "d-1").Return(nil, nil)
		repo.EXPECT().UpdateTotalInvoicedByID(gomock.Any(), "d-1", 0.0).
			Return(entities.Deliverable{ID: "d-1"}, nil)

		if _, err := uc.ApplyBillingEdit(context.Background(), "d-1", BillingEditCommand{
			BillingStatus: entities.BillingStatusProgress,
			Price:         900,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
