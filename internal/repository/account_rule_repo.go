package repository

import (
	"strings"

	"comptaflow-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRuleRepository struct {
	db *gorm.DB
}

func NewAccountRuleRepository(db *gorm.DB) *AccountRuleRepository {
	return &AccountRuleRepository{db: db}
}

// Create stores the keyword lowercased so rule matching never depends on
// how the admin typed it.
func (r *AccountRuleRepository) Create(rule *models.AccountRule) error {
	rule.Keyword = strings.ToLower(rule.Keyword)
	return r.db.Create(rule).Error
}

// ListByTenant returns rules in creation order. The order is semantically
// significant: account inference takes the first matching rule.
func (r *AccountRuleRepository) ListByTenant(tenantID uuid.UUID) ([]models.AccountRule, error) {
	var rules []models.AccountRule
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at ASC, id ASC").Find(&rules).Error
	return rules, err
}

func (r *AccountRuleRepository) Delete(tenantID, ruleID uuid.UUID) (int64, error) {
	result := r.db.Where("tenant_id = ? AND id = ?", tenantID, ruleID).Delete(&models.AccountRule{})
	return result.RowsAffected, result.Error
}
