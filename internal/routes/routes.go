package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	handler "comptaflow-backend/internal/handlers"
	"comptaflow-backend/internal/repository"
	service "comptaflow-backend/internal/services/reconciliation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	documentRepo := repository.NewDocumentRepository(db)
	ruleRepo := repository.NewAccountRuleRepository(db)
	transactionRepo := repository.NewBankTransactionRepository(db)

	reconService := service.NewService(documentRepo, ruleRepo, transactionRepo, logger)

	documentHandler := handler.NewDocumentHandler(documentRepo)
	ruleHandler := handler.NewRuleHandler(ruleRepo)
	bankHandler := handler.NewBankHandler(transactionRepo)
	reconHandler := handler.NewReconciliationHandler(reconService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	documents := api.Group("/documents")
	{
		documents.POST("", documentHandler.CreateDocument)
		documents.GET("", documentHandler.ListDocuments)
		documents.DELETE("", documentHandler.DeleteDocuments)
		documents.PATCH("/:id/status", documentHandler.UpdateStatus)
	}

	rules := api.Group("/rules")
	{
		rules.GET("", ruleHandler.ListRules)
		rules.POST("", ruleHandler.CreateRule)
		rules.DELETE("/:id", ruleHandler.DeleteRule)
	}

	bank := api.Group("/bank")
	{
		bank.POST("/import", bankHandler.ImportStatement)
		bank.GET("", bankHandler.ListTransactions)
	}

	api.GET("/entries", reconHandler.GetEntries)

	recon := api.Group("/reconciliations")
	{
		recon.GET("", reconHandler.GetReconciliations)
		recon.GET("/runs", reconHandler.ListRuns)
	}
}
