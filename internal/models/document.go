package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Document statuses set at extraction time.
const (
	StatusOK          = "OK"
	StatusNeedsReview = "A verifier"
)

// ISODate is the calendar-date layout used for DocDate and TxnDate.
// Dates are stored as plain strings because reconciliation compares them
// by exact equality, never by proximity.
const ISODate = "2006-01-02"

var ErrInvalidDocument = errors.New("invalid document")

type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"index"`
	Filename  string
	Vendor    string `gorm:"index"`
	DocDate   string `gorm:"column:doc_date"`
	AmountTTC float64 `gorm:"column:amount_ttc"`
	VAT       float64 `gorm:"column:vat"`
	Status    string  `gorm:"index"`
	CreatedAt time.Time
}

// Validate checks the fields an ingested document must carry before the
// ledger or the matcher may see it.
func (d *Document) Validate() error {
	if d.Filename == "" {
		return fmt.Errorf("%w: missing filename", ErrInvalidDocument)
	}
	if d.Vendor == "" {
		return fmt.Errorf("%w: missing vendor", ErrInvalidDocument)
	}
	if _, err := time.Parse(ISODate, d.DocDate); err != nil {
		return fmt.Errorf("%w: doc_date %q is not YYYY-MM-DD", ErrInvalidDocument, d.DocDate)
	}
	if d.AmountTTC < 0 {
		return fmt.Errorf("%w: negative amount_ttc %.2f", ErrInvalidDocument, d.AmountTTC)
	}
	if d.VAT < 0 {
		return fmt.Errorf("%w: negative vat %.2f", ErrInvalidDocument, d.VAT)
	}
	return nil
}

// AmountsConsistent reports whether vat <= amount_ttc. Entries are still
// produced when it is false; callers decide how to surface the condition.
func (d *Document) AmountsConsistent() bool {
	return d.VAT <= d.AmountTTC
}
