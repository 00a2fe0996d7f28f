package handlers

import (
	"errors"
	"net/http"

	request "agencydesk/internal/adapter/http/dto/request"
	response "agencydesk/internal/adapter/http/dto/response"
	"agencydesk/internal/domain/entities"
	"agencydesk/internal/usecase"
	"agencydesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidHistoryPayload = pkg.NewDomainErrorSimple("INVALID_HISTORY_INPUT", "Invalid billing history payload", http.StatusBadRequest)
)

// BillingHistoryHandler handles HTTP requests for the billing history ledger.

type BillingHistoryHandler struct {
	usecase usecase.IBillingHistoryUseCase
}

func NewBillingHistoryHandler(uc usecase.IBillingHistoryUseCase) *BillingHistoryHandler {
	return &BillingHistoryHandler{usecase: uc}
}

func (h *BillingHistoryHandler) AddEntry(c *gin.Context) {
	var payload request.AddHistoryEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHistoryPayload.HTTPStatus, errInvalidHistoryPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.AddEntry(
		c.Request.Context(),
		payload.DeliverableID,
		entities.BillingStatus(payload.Status),
		payload.Amount,
		payload.Notes,
		payload.ChangedBy,
	)
	if err != nil {
		appErr := mapBillingHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBillingHistoryEntry(entry))
}

func (h *BillingHistoryHandler) UpdateEntry(c *gin.Context) {
	id := c.Param("id")

	var payload request.UpdateHistoryEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHistoryPayload.HTTPStatus, errInvalidHistoryPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.UpdateEntry(c.Request.Context(), id, payload.Amount, payload.Notes)
	if err != nil {
		appErr := mapBillingHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillingHistoryEntry(entry))
}

func (h *BillingHistoryHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.DeleteEntry(c.Request.Context(), id); err != nil {
		appErr := mapBillingHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BillingHistoryHandler) ListByDeliverable(c *gin.Context) {
	deliverableID := c.Param("id")

	entries, err := h.usecase.ListByDeliverable(c.Request.Context(), deliverableID)
	if err != nil {
		appErr := mapBillingHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillingHistoryEntries(entries))
}

func mapBillingHistoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHistoryEntryID), errors.Is(err, usecase.ErrInvalidHistoryDelivID),
		errors.Is(err, usecase.ErrInvalidHistoryBillStat):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHistoryEntryNotFound):
		return pkg.NewDomainErrorSimple("HISTORY_ENTRY_NOT_FOUND", "Billing history entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeliverableNotFound):
		return pkg.NewDomainErrorSimple("DELIVERABLE_NOT_FOUND", "Deliverable not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
