package handler

import (
	"net/http"
	"time"

	"comptaflow-backend/internal/models"
	"comptaflow-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RuleHandler struct {
	ruleRepo *repository.AccountRuleRepository
}

func NewRuleHandler(ruleRepo *repository.AccountRuleRepository) *RuleHandler {
	return &RuleHandler{ruleRepo: ruleRepo}
}

func (h *RuleHandler) ListRules(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	rules, err := h.ruleRepo.ListByTenant(tenant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rules})
}

func (h *RuleHandler) CreateRule(c *gin.Context) {
	var payload struct {
		Keyword      string `json:"keyword"`
		AccountCode  string `json:"account_code"`
		AccountLabel string `json:"account_label"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if len(payload.Keyword) < 2 || len(payload.AccountCode) < 3 || len(payload.AccountLabel) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword, account_code and account_label required"})
		return
	}

	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	rule := &models.AccountRule{
		ID:           uuid.New(),
		TenantID:     tenant,
		Keyword:      payload.Keyword,
		AccountCode:  payload.AccountCode,
		AccountLabel: payload.AccountLabel,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.ruleRepo.Create(rule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rule": rule})
}

func (h *RuleHandler) DeleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	deleted, err := h.ruleRepo.Delete(tenant, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "rule not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rule deleted"})
}
