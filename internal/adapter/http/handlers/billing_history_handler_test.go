package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agencydesk/internal/adapter/http/handlers/mocks"
	"agencydesk/internal/domain/entities"
	"agencydesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBillingHistoryHandler_AddEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingHistoryUseCase(ctrl)
		h := NewBillingHistoryHandler(uc)

		r := gin.New()
		r.POST("/v1/history", h.AddEntry)

		req := httptest.NewRequest(http.MethodPost, "/v1/history", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("entry recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingHistoryUseCase(ctrl)
		h := NewBillingHistoryHandler(uc)

		r := gin.New()
		r.POST("/v1/history", h.AddEntry)

		uc.EXPECT().
			AddEntry(gomock.Any(), "deliv-1", entities.BillingStatusDeposit, 500.0, "first invoice", "ana").
			Return(entities.BillingHistoryEntry{ID: "hist-1", DeliverableID: "deliv-1", Status: entities.BillingStatusDeposit, Amount: 500, ChangedAt: time.Now().UTC()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/history", bytes.NewBufferString(`{"deliverable_id":"deliv-1","status":"deposit","amount":500,"notes":"first invoice","changed_by":"ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("deliverable missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingHistoryUseCase(ctrl)
		h := NewBillingHistoryHandler(uc)

		r := gin.New()
		r.POST("/v1/history", h.AddEntry)

		uc.EXPECT().
			AddEntry(gomock.Any(), "missing", entities.BillingStatusDeposit, 500.0, "", "").
			Return(entities.BillingHistoryEntry{}, usecase.ErrDeliverableNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/history", bytes.NewBufferString(`{"deliverable_id":"missing","status":"deposit","amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBillingHistoryHandler_UpdateEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("amount and notes updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingHistoryUseCase(ctrl)
		h := NewBillingHistoryHandler(uc)

		r := gin.New()
		r.PATCH("/v1/history/:id", h.UpdateEntry)

		uc.EXPECT().
			UpdateEntry(gomock.Any(), "hist-1", 750.0, "corrected").
			Return(entities.BillingHistoryEntry{ID: "hist-1", Amount: 750, Notes: "corrected"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/history/hist-1", bytes.NewBufferString(`{"amount":750,"notes":"corrected"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("entry not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingHistoryUseCase(ctrl)
		h := NewBillingHistoryHandler(uc)

		r := gin.New()
		r.PATCH("/v1/history/:id", h.UpdateEntry)

		uc.EXPECT().
			UpdateEntry(gomock.Any(), "missing", 750.0, "").
			Return(entities.BillingHistoryEntry{}, usecase.ErrHistoryEntryNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/history/missing", bytes.NewBufferString(`{"amount":750}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBillingHistoryHandler_DeleteEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingHistoryUseCase(ctrl)
		h := NewBillingHistoryHandler(uc)

		r := gin.New()
		r.DELETE("/v1/history/:id", h.DeleteEntry)

		uc.EXPECT().DeleteEntry(gomock.Any(), "hist-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/history/hist-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingHistoryUseCase(ctrl)
		h := NewBillingHistoryHandler(uc)

		r := gin.New()
		r.DELETE("/v1/history/:id", h.DeleteEntry)

		uc.EXPECT().DeleteEntry(gomock.Any(), "missing").Return(usecase.ErrHistoryEntryNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/history/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBillingHistoryHandler_ListByDeliverable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingHistoryUseCase(ctrl)
	h := NewBillingHistoryHandler(uc)

	r := gin.New()
	r.GET("/v1/deliverables/:id/history", h.ListByDeliverable)

	uc.EXPECT().
		ListByDeliverable(gomock.Any(), "deliv-1").
		Return([]entities.BillingHistoryEntry{
			{ID: "hist-1", DeliverableID: "deliv-1", Status: entities.BillingStatusDeposit, Amount: 500},
			{ID: "hist-2", DeliverableID: "deliv-1", Status: entities.BillingStatusProgress, Amount: 200},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/deliverables/deliv-1/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapBillingHistoryError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid entry id", usecase.ErrInvalidHistoryEntryID, http.StatusBadRequest},
		{"entry not found", usecase.ErrHistoryEntryNotFound, http.StatusNotFound},
		{"deliverable not found", usecase.ErrDeliverableNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapBillingHistoryError(tc.err)
			if appErr.HTTPStatus != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, appErr.HTTPStatus)
			}
		})
	}
}
