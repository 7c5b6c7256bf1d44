package routes

import (
	"orcamento_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgetTypes   = "/budget-types"
	PathQuoteRequests = "/quote-requests"
)

func addOrcamentoRoutes(rg *gin.RouterGroup, budgetTypeHandler *handlers.BudgetTypeHandler, quoteHandler *handlers.QuoteRequestHandler) {
	budgetTypes := rg.Group(PathBudgetTypes)
	{
		budgetTypes.GET("", budgetTypeHandler.List)
		budgetTypes.GET("/deleted", budgetTypeHandler.ListDeleted)
		budgetTypes.GET("/:id", budgetTypeHandler.GetByID)
		budgetTypes.POST("", budgetTypeHandler.Create)
		budgetTypes.PUT("/:id", budgetTypeHandler.Update)
		budgetTypes.DELETE("/:id", budgetTypeHandler.Delete)
	}

	quotes := rg.Group(PathQuoteRequests)
	{
		quotes.GET("", quoteHandler.List)
		quotes.GET("/deleted", quoteHandler.ListDeleted)
		quotes.POST("/uploads", quoteHandler.CreateUploadURL)
		quotes.GET("/:id", quoteHandler.GetByID)
		quotes.GET("/:id/document-url", quoteHandler.GetDocumentURL)
		quotes.POST("", quoteHandler.Create)
		quotes.PUT("/:id", quoteHandler.Update)
		quotes.DELETE("/:id", quoteHandler.Delete)
	}
}
