package routes

import (
	"agencydesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients      = "/clients"
	PathProjects     = "/projects"
	PathDeliverables = "/deliverables"
	PathHistory      = "/history"
)

func addAgencyRoutes(
	rg *gin.RouterGroup,
	deliverableHandler *handlers.DeliverableHandler,
	projectHandler *handlers.ProjectHandler,
	historyHandler *handlers.BillingHistoryHandler,
	clientHandler *handlers.ClientHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClientByID)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjectsByClient)
		projects.GET("/:id", projectHandler.GetProjectByID)
		projects.PATCH("/:id/quote", projectHandler.SetQuoteAmount)
		projects.GET("/:id/billing", projectHandler.GetProjectBilling)
		projects.POST("/:id/payments", projectHandler.CollectPayment)
	}

	deliverables := rg.Group(PathDeliverables)
	{
		deliverables.POST("", deliverableHandler.CreateDeliverable)
		deliverables.GET("", deliverableHandler.ListDeliverables)
		deliverables.GET("/:id", deliverableHandler.GetDeliverableByID)
		deliverables.PATCH("/:id/move", deliverableHandler.MoveDeliverable)
		deliverables.PATCH("/:id/billing", deliverableHandler.EditBilling)
		deliverables.GET("/:id/history", historyHandler.ListByDeliverable)
	}

	history := rg.Group(PathHistory)
	{
		history.POST("", historyHandler.AddEntry)
		history.PATCH("/:id", historyHandler.UpdateEntry)
		history.DELETE("/:id", historyHandler.DeleteEntry)
	}
}
