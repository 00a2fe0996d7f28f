package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "agencydesk/internal/adapter/http/dto/request"
	response "agencydesk/internal/adapter/http/dto/response"
	"agencydesk/internal/domain/entities"
	"agencydesk/internal/usecase"
	"agencydesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
)

// ProjectHandler handles HTTP requests for projects, including the billing
// rollup and the payment collection flow.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ClientID, payload.Name, payload.QuoteAmount)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(created))
}

func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id := c.Param("id")

	project, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) ListProjectsByClient(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	projects, err := h.usecase.ListByClientID(c.Request.Context(), clientID)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) SetQuoteAmount(c *gin.Context) {
	id := c.Param("id")

	var payload request.SetQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.SetQuoteAmount(c.Request.Context(), id, payload.Amount)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// GetProjectBilling computes the display-side rollup across the project's
// payments and its deliverables' invoiced totals.
func (h *ProjectHandler) GetProjectBilling(c *gin.Context) {
	id := c.Param("id")

	project, rollup, err := h.usecase.GetBilling(c.Request.Context(), id)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectBilling(project, rollup))
}

// CollectPayment records a deposit, progress or balance payment and, when a
// gateway payload is present, charges it through the configured provider.
func (h *ProjectHandler) CollectPayment(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[project][handler] collect start id=%s", id)

	var payload request.CollectPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[project][handler] invalid payload id=%s err=%v", id, err)
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CollectPayment(
		c.Request.Context(),
		id,
		entities.ProjectPaymentKind(payload.Kind),
		payload.Amount,
		normalizeMPPayload(payload.MPPayload),
	)
	if err != nil {
		log.Printf("[project][handler] collect failed id=%s kind=%s err=%v", id, payload.Kind, err)
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[project][handler] collect success id=%s kind=%s provider_payment_id=%s", id, payload.Kind, result.ProviderPaymentID)

	c.JSON(http.StatusOK, response.ProjectPaymentResponse{
		Project:           response.FromProject(result.Project),
		ProviderPaymentID: result.ProviderPaymentID,
		ProviderStatus:    result.ProviderStatus,
	})
}

// normalizeMPPayload treats empty and "null" payloads as absent so the use
// case skips the gateway instead of charging an empty request.
func normalizeMPPayload(raw json.RawMessage) json.RawMessage {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil
	}
	return raw
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectName),
		errors.Is(err, usecase.ErrInvalidProjectClient), errors.Is(err, usecase.ErrInvalidPaymentKind),
		errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayFailure):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider rejected the charge", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
