package repository

import (
	"comptaflow-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// EnsureByName creates the tenant on first use; duplicate names are ignored.
func (r *TenantRepository) EnsureByName(tenant *models.Tenant) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(tenant).Error
}
