package ledger

import (
	"strings"

	"comptaflow-backend/internal/models"
)

// Fixed accounts of the purchase journal.
const (
	VendorPayableAccount = "401000"
	VATDeductibleAccount = "445660"
	FallbackAccountCode  = "606000"
	FallbackAccountLabel = "Achats divers"
)

type defaultRule struct {
	keyword string
	code    string
	label   string
}

// Built-in keyword table for common vendors, walked in order after the
// tenant's own rules.
var defaultRules = []defaultRule{
	{"orange", "626000", "Frais telecom"},
	{"ovh", "613200", "Hebergement"},
	{"sncf", "625100", "Transport"},
	{"edf", "606100", "Energie"},
	{"ikea", "606300", "Petit equipement"},
	{"carrefour", "606400", "Fournitures"},
	{"amazon", "607000", "Achats"},
}

// InferAccount maps a vendor name to an expense account. Tenant rules are
// walked first in the order given, then the built-in table, matching by
// case-insensitive substring containment; the first hit wins. Always
// returns a valid pair, falling back to the generic purchases account.
func InferAccount(vendor string, tenantRules []models.AccountRule) (code, label string) {
	v := strings.ToLower(vendor)
	for _, r := range tenantRules {
		if strings.Contains(v, strings.ToLower(r.Keyword)) {
			return r.AccountCode, r.AccountLabel
		}
	}
	for _, r := range defaultRules {
		if strings.Contains(v, r.keyword) {
			return r.code, r.label
		}
	}
	return FallbackAccountCode, FallbackAccountLabel
}
