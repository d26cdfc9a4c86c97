package models

import "github.com/google/uuid"

// AccountingEntry is one line of a purchase-journal entry. Entries are
// derived from documents on demand and never persisted; consumers treat
// them as read-only views.
type AccountingEntry struct {
	Date    string  `json:"date"`
	Journal string  `json:"journal"`
	Account string  `json:"account"`
	Label   string  `json:"label"`
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
	Doc     string  `json:"doc"`
	Vendor  string  `json:"vendor"`
}

// Match pairs a document with the bank transaction that best explains it.
// Derived per invocation, never persisted.
type Match struct {
	DocumentID uuid.UUID `json:"document_id"`
	BankTxnID  uuid.UUID `json:"bank_txn_id"`
	MatchScore float64   `json:"match_score"`
}
