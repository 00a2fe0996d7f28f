package routes

import (
	"log"
	"os"
	"strconv"

	_ "agencydesk/docs" // This will be auto-generated
	"agencydesk/internal/adapter/http/handlers"
	repository2 "agencydesk/internal/adapter/persistence/repository"
	"agencydesk/internal/infrastructure/database"
	"agencydesk/internal/infrastructure/payments"
	"agencydesk/internal/usecase"
	"agencydesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	deliverableRepo := repository2.NewDeliverableDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	historyRepo := repository2.NewBillingHistoryDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	deliverableUseCase := usecase.NewDeliverableUseCase(deliverableRepo, projectRepo, historyRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, deliverableRepo, paymentGateway)
	historyUseCase := usecase.NewBillingHistoryUseCase(historyRepo, deliverableRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)

	deliverableHandler := handlers.NewDeliverableHandler(deliverableUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	historyHandler := handlers.NewBillingHistoryHandler(historyUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAgencyRoutes(v1, deliverableHandler, projectHandler, historyHandler, clientHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
