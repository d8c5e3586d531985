package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "estetica_pro/docs" // swag-generated
	request "estetica_pro/internal/adapter/http/dto/request"
	"estetica_pro/internal/adapter/http/handlers"
	repository2 "estetica_pro/internal/adapter/persistence/repository"
	"estetica_pro/internal/adapter/persistence/store"
	"estetica_pro/internal/infrastructure/database"
	"estetica_pro/internal/infrastructure/jobs"
	"estetica_pro/internal/infrastructure/payments"
	"estetica_pro/internal/usecase"
	"estetica_pro/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run wires the store, use cases and handlers, then starts the server.
func Run() {
	setMiddlewares()
	request.RegisterCustomValidators()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()

	ddb := database.Connect(ctx)
	objectStore := store.New(ddb)
	if err := objectStore.Init(ctx); err != nil {
		log.Fatalf("Failed to initialize the object store: %v", err)
	}

	clientRepo := repository2.NewClientStoreRepository(objectStore)
	vehicleRepo := repository2.NewVehicleStoreRepository(objectStore)
	orderRepo := repository2.NewWorkOrderStoreRepository(objectStore)
	financialRepo := repository2.NewFinancialStoreRepository(objectStore)
	loyaltyRepo := repository2.NewLoyaltyStoreRepository(objectStore)
	employeeRepo := repository2.NewEmployeeStoreRepository(objectStore)
	catalog := repository2.NewServiceCatalogStore(objectStore)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	loyaltyUseCase := usecase.NewLoyaltyUseCase(loyaltyRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo, vehicleRepo)
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo)
	workOrderUseCase := usecase.NewWorkOrderUseCase(orderRepo, clientRepo, vehicleRepo, catalog, loyaltyUseCase)
	paymentUseCase := usecase.NewPaymentUseCase(financialRepo, orderRepo, clientRepo, paymentGateway)

	refresher := jobs.NewEngagementRefresher(clientUseCase, false)
	if err := refresher.Start(); err != nil {
		log.Printf("Engagement refresher not started: %v", err)
	}

	clientHandler := handlers.NewClientHandler(clientUseCase)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	loyaltyHandler := handlers.NewLoyaltyHandler(loyaltyUseCase)
	employeeHandler := handlers.NewEmployeeHandler(employeeUseCase)
	storeAdminHandler := handlers.NewStoreAdminHandler(objectStore)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, clientHandler, workOrderHandler, paymentHandler, loyaltyHandler, employeeHandler, storeAdminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
