package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTransaction = errors.New("invalid transaction")

// BankTransaction is one statement line from a bulk import. Immutable once
// created.
type BankTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"index"`
	TxnDate     string    `gorm:"column:txn_date"`
	Description string
	Amount      float64 `gorm:"index"`
	CreatedAt   time.Time
}

func (t *BankTransaction) Validate() error {
	if _, err := time.Parse(ISODate, t.TxnDate); err != nil {
		return fmt.Errorf("%w: txn_date %q is not YYYY-MM-DD", ErrInvalidTransaction, t.TxnDate)
	}
	return nil
}
