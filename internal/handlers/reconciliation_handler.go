package handler

import (
	"net/http"

	service "comptaflow-backend/internal/services/reconciliation"

	"github.com/gin-gonic/gin"
)

type ReconciliationHandler struct {
	service *service.Service
}

func NewReconciliationHandler(s *service.Service) *ReconciliationHandler {
	return &ReconciliationHandler{service: s}
}

// GetReconciliations runs the matcher over the tenant's current documents
// and bank transactions and returns the accepted matches.
func (h *ReconciliationHandler) GetReconciliations(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	matches, err := h.service.Reconcile(tenant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": matches})
}

func (h *ReconciliationHandler) ListRuns(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	runs, err := h.service.ListRuns(tenant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": runs})
}

// GetEntries expands the tenant's documents into purchase-journal lines.
func (h *ReconciliationHandler) GetEntries(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	entries, err := h.service.Entries(tenant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}
