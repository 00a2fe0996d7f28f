package handlers

import (
	"errors"
	"log"
	"net/http"

	request "agencydesk/internal/adapter/http/dto/request"
	response "agencydesk/internal/adapter/http/dto/response"
	"agencydesk/internal/domain/entities"
	"agencydesk/internal/usecase"
	"agencydesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDeliverablePayload = pkg.NewDomainErrorSimple("INVALID_DELIVERABLE_INPUT", "Invalid deliverable payload", http.StatusBadRequest)
)

// DeliverableHandler handles HTTP requests for production deliverables.
//
// Move is the drag path: the client names a target status, the guard decides.
// EditBilling is the guarded path: billing stage and price come in, any status
// change is derived server-side.

type DeliverableHandler struct {
	usecase usecase.IDeliverableUseCase
}

func NewDeliverableHandler(uc usecase.IDeliverableUseCase) *DeliverableHandler {
	return &DeliverableHandler{usecase: uc}
}

func (h *DeliverableHandler) CreateDeliverable(c *gin.Context) {
	var payload request.CreateDeliverableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDeliverablePayload.HTTPStatus, errInvalidDeliverablePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateDeliverableCommand{
		Name:            payload.Name,
		ProjectID:       payload.ProjectID,
		ClientID:        payload.ClientID,
		Price:           payload.Price,
		SubcontractCost: payload.SubcontractCost,
		PotentialMargin: payload.PotentialMargin,
	})
	if err != nil {
		appErr := mapDeliverableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDeliverable(created))
}

func (h *DeliverableHandler) GetDeliverableByID(c *gin.Context) {
	id := c.Param("id")

	deliverable, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapDeliverableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeliverable(deliverable))
}

// ListDeliverables returns every deliverable, or a project's board when the
// project_id query param is set.
func (h *DeliverableHandler) ListDeliverables(c *gin.Context) {
	projectID := c.Query("project_id")

	var (
		deliverables []entities.Deliverable
		err          error
	)
	if projectID != "" {
		deliverables, err = h.usecase.ListByProjectID(c.Request.Context(), projectID)
	} else {
		deliverables, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapDeliverableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeliverables(deliverables))
}

func (h *DeliverableHandler) MoveDeliverable(c *gin.Context) {
	id := c.Param("id")

	var payload request.MoveDeliverableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDeliverablePayload.HTTPStatus, errInvalidDeliverablePayload.ToHTTPError())
		return
	}
	log.Printf("[deliverable][handler] move start id=%s target=%s", id, payload.Status)

	moved, err := h.usecase.Move(c.Request.Context(), id, entities.DeliverableStatus(payload.Status))
	if err != nil {
		log.Printf("[deliverable][handler] move failed id=%s err=%v", id, err)
		appErr := mapDeliverableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deliverable][handler] move success id=%s status=%s", id, moved.Status)

	c.JSON(http.StatusOK, response.FromDeliverable(moved))
}

func (h *DeliverableHandler) EditBilling(c *gin.Context) {
	id := c.Param("id")

	var payload request.BillingEditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDeliverablePayload.HTTPStatus, errInvalidDeliverablePayload.ToHTTPError())
		return
	}
	log.Printf("[deliverable][handler] billing-edit start id=%s billing_status=%s", id, payload.BillingStatus)

	edited, err := h.usecase.ApplyBillingEdit(c.Request.Context(), id, usecase.BillingEditCommand{
		BillingStatus: entities.BillingStatus(payload.BillingStatus),
		Price:         payload.Price,
		Amount:        payload.Amount,
		Notes:         payload.Notes,
		ChangedBy:     payload.ChangedBy,
	})
	if err != nil {
		log.Printf("[deliverable][handler] billing-edit failed id=%s err=%v", id, err)
		appErr := mapDeliverableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deliverable][handler] billing-edit success id=%s status=%s billing_status=%s", id, edited.Status, edited.BillingStatus)

	c.JSON(http.StatusOK, response.FromDeliverable(edited))
}

func mapDeliverableError(err error) *pkg.AppError {
	var denied *usecase.TransitionDeniedError
	switch {
	case errors.As(err, &denied):
		return pkg.NewDomainErrorSimple("TRANSITION_DENIED", string(denied.Reason), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDeliverableID), errors.Is(err, usecase.ErrInvalidDeliverableName),
		errors.Is(err, usecase.ErrInvalidTargetStatus), errors.Is(err, usecase.ErrInvalidBillingStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeliverableNotFound):
		return pkg.NewDomainErrorSimple("DELIVERABLE_NOT_FOUND", "Deliverable not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
