package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "clubpay/docs" // This will be auto-generated
	"clubpay/internal/adapter/http/handlers"
	repository2 "clubpay/internal/adapter/persistence/repository"
	"clubpay/internal/domain/entities"
	"clubpay/internal/infrastructure/database"
	"clubpay/internal/infrastructure/notifications"
	"clubpay/internal/infrastructure/processors"
	"clubpay/internal/infrastructure/sessions"
	"clubpay/internal/usecase"
	"clubpay/internal/usecase/interfaces"

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

	clubConfigRepo := repository2.NewClubConfigDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	purchaseRepo := repository2.NewPurchaseDynamoRepository(ddb)

	registry := sessions.NewRegistry()

	paytraceClient := processors.NewPayTraceClient()
	convergeClient := processors.NewConvergeClient()

	issuers := map[entities.Processor]interfaces.ITokenIssuer{
		entities.ProcessorPayTrace: paytraceClient,
		entities.ProcessorConverge: convergeClient,
	}

	sessionUseCase := usecase.NewSessionUseCase(clubConfigRepo, catalogRepo, issuers, registry, resultTimeoutFromEnv())
	purchaseUseCase := usecase.NewPurchaseUseCase(purchaseRepo, catalogRepo, clubConfigRepo, paytraceClient, registry, notifications.NewBackofficeNotifierFromEnv())
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)

	sessionHandler := handlers.NewPaymentSessionHandler(sessionUseCase)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, sessionHandler, purchaseHandler)
	addClubRoutes(v1, catalogHandler, purchaseHandler)
}

// resultTimeoutFromEnv reads the overlay result timeout in seconds. Zero or
// garbage falls back to the use case default.
func resultTimeoutFromEnv() time.Duration {
	raw := os.Getenv("SESSION_RESULT_TIMEOUT")
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("[routes] ignoring invalid SESSION_RESULT_TIMEOUT=%q", raw)
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
