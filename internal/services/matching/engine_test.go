package matching

import (
	"testing"

	"comptaflow-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(amount float64, date, vendor string) models.Document {
	return models.Document{
		ID:        uuid.New(),
		Vendor:    vendor,
		DocDate:   date,
		AmountTTC: amount,
	}
}

func txn(amount float64, date, description string) models.BankTransaction {
	return models.BankTransaction{
		ID:          uuid.New(),
		TxnDate:     date,
		Description: description,
		Amount:      amount,
	}
}

func TestScore_FullAlignment(t *testing.T) {
	d := doc(250.00, "2025-03-01", "Orange")
	tx := txn(250.00, "2025-03-01", "VIR ORANGE TELECOM")

	score, ok := Score(d, tx)
	require.True(t, ok)
	assert.InDelta(t, 1.0, score, 0.0001)
}

func TestScore_AmountGateBoundaryInclusive(t *testing.T) {
	d := doc(99.99, "2025-03-01", "Orange")

	_, ok := Score(d, txn(100.00, "2025-03-01", "VIR ORANGE"))
	assert.True(t, ok, "one cent difference passes the gate")

	_, ok = Score(d, txn(100.02, "2025-03-01", "VIR ORANGE"))
	assert.False(t, ok, "three cents difference is rejected")
}

func TestScore_AmountGateIgnoresOtherSignals(t *testing.T) {
	// Perfect date and vendor alignment cannot rescue a failed gate.
	d := doc(100.00, "2025-03-01", "Orange")
	_, ok := Score(d, txn(100.02, "2025-03-01", "ORANGE"))
	assert.False(t, ok)
}

func TestScore_AmountOnly(t *testing.T) {
	d := doc(80.00, "2025-03-01", "Orange")
	score, ok := Score(d, txn(80.00, "2025-03-05", "CB SUPERMARCHE"))
	require.True(t, ok)
	assert.InDelta(t, 0.6, score, 0.0001)
}

func TestScore_VendorSubstringCaseInsensitive(t *testing.T) {
	d := doc(80.00, "2025-03-01", "ovh")
	score, ok := Score(d, txn(80.00, "2025-03-05", "PRLV OVH SAS"))
	require.True(t, ok)
	assert.InDelta(t, 0.7, score, 0.0001)
}

func TestBestMatches_BelowThresholdExcluded(t *testing.T) {
	d := doc(250.00, "2025-03-01", "Orange")
	// Amount matches, nothing else: 0.6 < 0.7.
	matches := BestMatches(
		[]models.Document{d},
		[]models.BankTransaction{txn(250.00, "2025-04-01", "CB DIVERS")},
	)
	assert.Empty(t, matches)
}

func TestBestMatches_EmitsBestCandidate(t *testing.T) {
	d := doc(250.00, "2025-03-01", "Orange")
	weak := txn(250.00, "2025-03-02", "VIR ORANGE")   // 0.7
	strong := txn(250.00, "2025-03-01", "VIR ORANGE") // 1.0

	matches := BestMatches(
		[]models.Document{d},
		[]models.BankTransaction{weak, strong},
	)
	require.Len(t, matches, 1)
	assert.Equal(t, d.ID, matches[0].DocumentID)
	assert.Equal(t, strong.ID, matches[0].BankTxnID)
	assert.InDelta(t, 1.0, matches[0].MatchScore, 0.0001)
}

func TestBestMatches_TieKeepsFirstInInputOrder(t *testing.T) {
	d := doc(100.00, "2025-03-01", "EDF")
	first := txn(100.00, "2025-03-01", "CB DIVERS")  // 0.9
	second := txn(100.00, "2025-03-01", "CB AUTRES") // 0.9

	matches := BestMatches(
		[]models.Document{d},
		[]models.BankTransaction{first, second},
	)
	require.Len(t, matches, 1)
	assert.Equal(t, first.ID, matches[0].BankTxnID)
}

func TestBestMatches_NonExclusiveAcrossDocuments(t *testing.T) {
	d1 := doc(42.00, "2025-03-01", "OVH")
	d2 := doc(42.00, "2025-03-01", "OVH")
	tx := txn(42.00, "2025-03-01", "PRLV OVH")

	matches := BestMatches(
		[]models.Document{d1, d2},
		[]models.BankTransaction{tx},
	)
	require.Len(t, matches, 2)
	assert.Equal(t, tx.ID, matches[0].BankTxnID)
	assert.Equal(t, tx.ID, matches[1].BankTxnID)
}

func TestBestMatches_EmptyInputs(t *testing.T) {
	assert.Empty(t, BestMatches(nil, nil))
	assert.Empty(t, BestMatches([]models.Document{doc(10, "2025-01-01", "X")}, nil))
	assert.Empty(t, BestMatches(nil, []models.BankTransaction{txn(10, "2025-01-01", "X")}))
}

func TestBestMatches_OneMatchPerDocument(t *testing.T) {
	d := doc(10.00, "2025-03-01", "EDF")
	matches := BestMatches(
		[]models.Document{d},
		[]models.BankTransaction{
			txn(10.00, "2025-03-01", "PRLV EDF"),
			txn(10.00, "2025-03-01", "PRLV EDF SA"),
			txn(10.01, "2025-03-01", "PRLV EDF"),
		},
	)
	assert.Len(t, matches, 1)
}

func TestBestMatches_Idempotent(t *testing.T) {
	docs := []models.Document{
		doc(250.00, "2025-03-01", "Orange"),
		doc(99.99, "2025-03-04", "SNCF"),
		doc(10.50, "2025-03-05", "Ikea"),
	}
	txns := []models.BankTransaction{
		txn(250.00, "2025-03-01", "VIR ORANGE TELECOM"),
		txn(100.00, "2025-03-04", "SNCF INTERNET"),
		txn(999.00, "2025-03-05", "LOYER"),
	}

	first := BestMatches(docs, txns)
	second := BestMatches(docs, txns)
	assert.Equal(t, first, second)
}

func TestBestMatches_ScoreRoundedToTwoDecimals(t *testing.T) {
	d := doc(0.30, "2025-03-01", "EDF")
	// 0.1+0.2 style float noise on the amount still passes the gate.
	tx := txn(0.1+0.2, "2025-03-01", "PRLV EDF")

	matches := BestMatches([]models.Document{d}, []models.BankTransaction{tx})
	require.Len(t, matches, 1)
	assert.Equal(t, 1.0, matches[0].MatchScore)
}
