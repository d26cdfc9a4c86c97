package handler

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"comptaflow-backend/internal/models"
	"comptaflow-backend/internal/repository"
	"comptaflow-backend/internal/services/extract"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentHandler struct {
	documentRepo *repository.DocumentRepository
}

func NewDocumentHandler(documentRepo *repository.DocumentRepository) *DocumentHandler {
	return &DocumentHandler{documentRepo: documentRepo}
}

// CreateDocument ingests one document. When extracted OCR text is supplied
// the fields are parsed from it; otherwise simulated demo data is used, as
// for documents the upstream extraction could not read.
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var payload struct {
		Filename string `json:"filename"`
		Text     string `json:"text"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename required"})
		return
	}

	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	fields, parsed := extract.ParseFieldsFromText(payload.Text)
	if !parsed {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		fields = extract.SimulatedFields(rng, time.Now().UTC())
	}

	doc := &models.Document{
		ID:        uuid.New(),
		TenantID:  tenant,
		Filename:  payload.Filename,
		Vendor:    fields.Vendor,
		DocDate:   fields.DocDate,
		AmountTTC: fields.AmountTTC,
		VAT:       fields.VAT,
		Status:    fields.Status,
		CreatedAt: time.Now().UTC(),
	}
	if err := doc.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.documentRepo.Create(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"document": doc})
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	docs, err := h.documentRepo.ListByTenant(tenant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": docs})
}

// UpdateStatus flips a document between OK and needs-review; the only
// mutation a document supports.
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document ID"})
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Status != models.StatusOK && payload.Status != models.StatusNeedsReview {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	if _, err := h.documentRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.documentRepo.UpdateStatus(id, payload.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// DeleteDocuments removes all of the tenant's documents.
func (h *DocumentHandler) DeleteDocuments(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	deleted, err := h.documentRepo.DeleteByTenant(tenant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
