package handlers

import (
	"errors"
	"net/http"

	request "agencydesk/internal/adapter/http/dto/request"
	response "agencydesk/internal/adapter/http/dto/response"
	"agencydesk/internal/usecase"
	"agencydesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
)

// ClientHandler handles HTTP requests for agency clients.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Company, payload.Email, payload.Notes)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(created))
}

func (h *ClientHandler) GetClientByID(c *gin.Context) {
	id := c.Param("id")

	client, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
