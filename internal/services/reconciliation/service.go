package reconciliation

import (
	"encoding/json"
	"time"

	"comptaflow-backend/internal/models"
	"comptaflow-backend/internal/repository"
	"comptaflow-backend/internal/services/ledger"
	"comptaflow-backend/internal/services/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service loads per-tenant snapshots from the repositories and runs the
// pure matching and ledger cores over them. It owns no matching logic of
// its own.
type Service struct {
	documentRepo    *repository.DocumentRepository
	ruleRepo        *repository.AccountRuleRepository
	transactionRepo *repository.BankTransactionRepository
	db              *gorm.DB
	logger          *zap.Logger
}

func NewService(
	documentRepo *repository.DocumentRepository,
	ruleRepo *repository.AccountRuleRepository,
	transactionRepo *repository.BankTransactionRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		documentRepo:    documentRepo,
		ruleRepo:        ruleRepo,
		transactionRepo: transactionRepo,
		db:              documentRepo.DB(),
		logger:          logger,
	}
}

// Reconcile matches the tenant's documents against its bank transactions
// and records a MatchRun audit row. Documents without a candidate above the
// threshold are simply absent from the result.
func (s *Service) Reconcile(tenantID uuid.UUID) ([]models.Match, error) {
	startedAt := time.Now().UTC()

	docs, err := s.documentRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}

	matches := matching.BestMatches(docs, txns)

	if err := s.recordRun(tenantID, startedAt, len(docs), len(txns), matches); err != nil {
		// The run record is an audit artifact; losing it must not fail
		// the reconciliation itself.
		s.logger.Warn("failed to record match run",
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("reconciliation completed",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("documents", len(docs)),
		zap.Int("transactions", len(txns)),
		zap.Int("matched", len(matches)),
	)
	return matches, nil
}

func (s *Service) recordRun(tenantID uuid.UUID, startedAt time.Time, docCount, txnCount int, matches []models.Match) error {
	// Count how often a transaction is reused across documents; consumers
	// use this to spot the non-exclusive matches.
	reuse := make(map[uuid.UUID]int)
	for _, m := range matches {
		reuse[m.BankTxnID]++
	}
	reusedTxns := 0
	for _, n := range reuse {
		if n > 1 {
			reusedTxns++
		}
	}

	details, err := json.Marshal(map[string]interface{}{
		"matches":               matches,
		"reused_transactions":   reusedTxns,
		"distinct_transactions": len(reuse),
	})
	if err != nil {
		return err
	}

	completedAt := time.Now().UTC()
	run := &models.MatchRun{
		ID:               uuid.New(),
		TenantID:         tenantID,
		DocumentCount:    docCount,
		TransactionCount: txnCount,
		MatchedCount:     len(matches),
		Details:          details,
		StartedAt:        startedAt,
		CompletedAt:      &completedAt,
		CreatedAt:        completedAt,
	}
	return s.db.Create(run).Error
}

// ListRuns returns the tenant's reconciliation history, newest first.
func (s *Service) ListRuns(tenantID uuid.UUID) ([]models.MatchRun, error) {
	var runs []models.MatchRun
	err := s.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&runs).Error
	return runs, err
}

// Entries expands all of the tenant's documents into purchase-journal
// lines, applying the tenant's account rules.
func (s *Service) Entries(tenantID uuid.UUID) ([]models.AccountingEntry, error) {
	rules, err := s.ruleRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	docs, err := s.documentRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.AccountingEntry, 0, len(docs)*3)
	inconsistent := 0
	for _, doc := range docs {
		if !doc.AmountsConsistent() {
			inconsistent++
		}
		entries = append(entries, ledger.ToAccountingEntries(doc, rules)...)
	}
	if inconsistent > 0 {
		s.logger.Warn("documents with vat above amount_ttc",
			zap.String("tenant_id", tenantID.String()),
			zap.Int("count", inconsistent),
		)
	}
	return entries, nil
}
