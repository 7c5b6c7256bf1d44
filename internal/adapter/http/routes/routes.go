package routes

import (
	"log"
	_ "orcamento_api/docs" // This will be auto-generated
	"orcamento_api/internal/adapter/http/handlers"
	repository2 "orcamento_api/internal/adapter/persistence/repository"
	"orcamento_api/internal/infrastructure/database"
	"orcamento_api/internal/infrastructure/messaging"
	"orcamento_api/internal/infrastructure/storage"
	"orcamento_api/internal/usecase"
	"orcamento_api/internal/usecase/interfaces"
	"strconv"

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
	db := database.ConnectMySQL()
	if err := repository2.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	budgetTypeRepo := repository2.NewBudgetTypeGormRepository(db)
	quoteRepo := repository2.NewQuoteRequestGormRepository(db)

	producer := messaging.NewRedisNotificationProducer(messaging.ConnectRedis())
	dispatcher := messaging.NewAsyncDispatcher(producer, 0)

	// Document storage is an optional collaborator: without a bucket the
	// presigned-URL endpoints answer 503 and everything else still works.
	var documentStorage interfaces.IDocumentStorage
	s3Storage, err := storage.NewS3DocumentStorage(storage.ConnectS3())
	if err != nil {
		log.Printf("Document storage not configured: %v", err)
	} else {
		documentStorage = s3Storage
	}

	budgetTypeUseCase := usecase.NewBudgetTypeUseCase(budgetTypeRepo)
	quoteUseCase := usecase.NewQuoteRequestUseCase(quoteRepo, budgetTypeRepo, dispatcher, documentStorage)

	budgetTypeHandler := handlers.NewBudgetTypeHandler(budgetTypeUseCase)
	quoteHandler := handlers.NewQuoteRequestHandler(quoteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrcamentoRoutes(v1, budgetTypeHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
