package handler

import (
	"errors"
	"net/http"
	"time"

	"comptaflow-backend/internal/models"
	"comptaflow-backend/internal/repository"
	"comptaflow-backend/internal/services/bankimport"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BankHandler struct {
	transactionRepo *repository.BankTransactionRepository
}

func NewBankHandler(transactionRepo *repository.BankTransactionRepository) *BankHandler {
	return &BankHandler{transactionRepo: transactionRepo}
}

// ImportStatement ingests a delimited bank statement. The whole file is
// normalized and validated before anything is stored, so a malformed row
// rejects the import instead of leaving a partial batch behind.
func (h *BankHandler) ImportStatement(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	rows, err := bankimport.ParseStatement(file)
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransaction) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	txns := make([]models.BankTransaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, models.BankTransaction{
			ID:          uuid.New(),
			TenantID:    tenant,
			TxnDate:     row.TxnDate,
			Description: row.Description,
			Amount:      row.Amount,
			CreatedAt:   now,
		})
	}

	if err := h.transactionRepo.CreateBatch(txns); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"file":     header.Filename,
		"imported": len(txns),
	})
}

func (h *BankHandler) ListTransactions(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	txns, err := h.transactionRepo.ListByTenant(tenant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": txns})
}
