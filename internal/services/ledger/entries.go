package ledger

import (
	"math"

	"comptaflow-backend/internal/models"
)

// PurchaseJournal is the journal code carried by every generated line.
const PurchaseJournal = "ACH"

// round2 rounds to 2 decimal places, half away from zero. Applied only at
// the HT boundary, never on intermediate sums.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToAccountingEntries expands a document into its balanced purchase-journal
// entry: expense debit for the net amount, VAT debit, vendor credit for the
// tax-inclusive total. For every document the three lines satisfy
// sum(debit) == sum(credit) == AmountTTC.
func ToAccountingEntries(doc models.Document, tenantRules []models.AccountRule) []models.AccountingEntry {
	amountHT := round2(doc.AmountTTC - doc.VAT)
	expenseCode, expenseLabel := InferAccount(doc.Vendor, tenantRules)

	return []models.AccountingEntry{
		{
			Date:    doc.DocDate,
			Journal: PurchaseJournal,
			Account: expenseCode,
			Label:   expenseLabel,
			Debit:   amountHT,
			Credit:  0,
			Doc:     doc.Filename,
			Vendor:  doc.Vendor,
		},
		{
			Date:    doc.DocDate,
			Journal: PurchaseJournal,
			Account: VATDeductibleAccount,
			Label:   "TVA deductible",
			Debit:   doc.VAT,
			Credit:  0,
			Doc:     doc.Filename,
			Vendor:  doc.Vendor,
		},
		{
			Date:    doc.DocDate,
			Journal: PurchaseJournal,
			Account: VendorPayableAccount,
			Label:   "Fournisseur " + doc.Vendor,
			Debit:   0,
			Credit:  doc.AmountTTC,
			Doc:     doc.Filename,
			Vendor:  doc.Vendor,
		},
	}
}
