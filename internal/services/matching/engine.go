package matching

import (
	"math"
	"strings"

	"comptaflow-backend/internal/models"
)

const (
	// AmountTolerance is the hard gate: a pair whose amounts differ by
	// more than one cent is never considered, whatever the other signals.
	AmountTolerance = 0.01

	baseScore   = 0.6
	dateBonus   = 0.3
	vendorBonus = 0.1

	// AcceptanceThreshold is the minimum score a document's best candidate
	// must reach to be emitted.
	AcceptanceThreshold = 0.7
)

// Score rates one document/transaction pair. Returns 0 and false when the
// pair fails the amount gate. The difference is rounded to whole cents
// before the comparison so that a one-cent gap passes regardless of
// floating-point noise (99.99 vs 100.00 differs by slightly more than 0.01
// in float64).
func Score(doc models.Document, txn models.BankTransaction) (float64, bool) {
	diffCents := math.Round(math.Abs(doc.AmountTTC-txn.Amount) * 100)
	if diffCents > AmountTolerance*100 {
		return 0, false
	}
	score := baseScore
	if doc.DocDate == txn.TxnDate {
		score += dateBonus
	}
	if strings.Contains(strings.ToLower(txn.Description), strings.ToLower(doc.Vendor)) {
		score += vendorBonus
	}
	return score, true
}

// BestMatches selects, for each document, the highest-scoring transaction
// passing the amount gate, and emits it when the score clears the
// acceptance threshold. Tie-break: a candidate replaces the current best
// only on a strictly greater score, so equal scores keep the earliest
// transaction in input order. Callers wanting stable output across runs
// must supply transactions in a stable order.
//
// Matching is not exclusive: one transaction may be the best match of
// several documents in the same invocation.
func BestMatches(documents []models.Document, transactions []models.BankTransaction) []models.Match {
	var matches []models.Match
	for _, doc := range documents {
		var best *models.Match
		for _, txn := range transactions {
			score, ok := Score(doc, txn)
			if !ok {
				continue
			}
			if best == nil || score > best.MatchScore {
				best = &models.Match{
					DocumentID: doc.ID,
					BankTxnID:  txn.ID,
					MatchScore: score,
				}
			}
		}
		if best != nil && best.MatchScore >= AcceptanceThreshold {
			best.MatchScore = math.Round(best.MatchScore*100) / 100
			matches = append(matches, *best)
		}
	}
	return matches
}
