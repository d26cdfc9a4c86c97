package repository

import (
	"comptaflow-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankTransactionRepository struct {
	db *gorm.DB
}

func NewBankTransactionRepository(db *gorm.DB) *BankTransactionRepository {
	return &BankTransactionRepository{db: db}
}

func (r *BankTransactionRepository) CreateBatch(txns []models.BankTransaction) error {
	if len(txns) == 0 {
		return nil
	}
	return r.db.Create(&txns).Error
}

// ListByTenant returns transactions ordered by creation, oldest first, so
// matcher tie-breaks are stable across invocations.
func (r *BankTransactionRepository) ListByTenant(tenantID uuid.UUID) ([]models.BankTransaction, error) {
	var txns []models.BankTransaction
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at ASC, id ASC").Find(&txns).Error
	return txns, err
}
