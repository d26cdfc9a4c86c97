package repository

import (
	"comptaflow-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Expose DB if needed
func (r *DocumentRepository) DB() *gorm.DB {
	return r.db
}

func (r *DocumentRepository) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

// ListByTenant returns the tenant's documents ordered by creation, oldest
// first. The matcher relies on this ordering for stable tie-breaks.
func (r *DocumentRepository) ListByTenant(tenantID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at ASC, id ASC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	if err := r.db.First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateStatus is the only mutation a document supports after ingestion.
func (r *DocumentRepository) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&models.Document{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

// DeleteByTenant removes all of a tenant's documents in bulk.
func (r *DocumentRepository) DeleteByTenant(tenantID uuid.UUID) (int64, error) {
	result := r.db.Where("tenant_id = ?", tenantID).Delete(&models.Document{})
	return result.RowsAffected, result.Error
}
