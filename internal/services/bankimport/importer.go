// Package bankimport normalizes delimited bank statements into transaction
// rows before they reach the matcher. Banks disagree on delimiters, header
// spellings and decimal separators; everything is canonicalized here.
package bankimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"comptaflow-backend/internal/models"
)

// Row is one normalized statement line, ready to become a BankTransaction.
type Row struct {
	TxnDate     string
	Description string
	Amount      float64
}

// Accepted header spellings, lowercased.
var (
	dateHeaders        = []string{"date", "txn_date"}
	descriptionHeaders = []string{"description", "libellé", "libelle", "label"}
	amountHeaders      = []string{"amount", "montant"}
)

// Accepted date layouts, normalized to ISO on output.
var dateLayouts = []string{models.ISODate, "02-01-2006", "02/01/2006"}

// ParseStatement reads a delimited statement and returns normalized rows.
// The delimiter is sniffed from the header line (comma, semicolon or tab).
// Malformed rows fail with a row-numbered invalid-transaction error rather
// than being silently dropped; blank lines are skipped.
func ParseStatement(r io.Reader) ([]Row, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1
	reader.Comma = sniffDelimiter(string(content))

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header", models.ErrInvalidTransaction)
	}

	dateIdx := columnIndex(header, dateHeaders)
	descIdx := columnIndex(header, descriptionHeaders)
	amountIdx := columnIndex(header, amountHeaders)
	if dateIdx < 0 || amountIdx < 0 {
		return nil, fmt.Errorf("%w: statement header missing date or amount column", models.ErrInvalidTransaction)
	}

	var rows []Row
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", models.ErrInvalidTransaction, rowNum, err)
		}
		if strings.Join(record, "") == "" {
			continue
		}
		if len(record) <= dateIdx || len(record) <= amountIdx {
			return nil, fmt.Errorf("%w: row %d has too few columns", models.ErrInvalidTransaction, rowNum)
		}

		txnDate, err := normalizeDate(strings.TrimSpace(record[dateIdx]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", models.ErrInvalidTransaction, rowNum, err)
		}

		amount, err := parseAmount(strings.TrimSpace(record[amountIdx]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", models.ErrInvalidTransaction, rowNum, err)
		}

		description := ""
		if descIdx >= 0 && len(record) > descIdx {
			description = strings.TrimSpace(record[descIdx])
		}

		rows = append(rows, Row{TxnDate: txnDate, Description: description, Amount: amount})
	}
	return rows, nil
}

func sniffDelimiter(content string) rune {
	headerLine := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		headerLine = content[:i]
	}
	switch {
	case strings.Contains(headerLine, ";"):
		return ';'
	case strings.Contains(headerLine, "\t"):
		return '\t'
	default:
		return ','
	}
}

func columnIndex(header []string, accepted []string) int {
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		for _, a := range accepted {
			if name == a {
				return i
			}
		}
	}
	return -1
}

func normalizeDate(raw string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(models.ISODate), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q", raw)
}

// parseAmount accepts decimal commas ("12,30") and thin spaces used as
// thousand separators on some French exports.
func parseAmount(raw string) (float64, error) {
	s := strings.ReplaceAll(raw, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable amount %q", raw)
	}
	return amount, nil
}
