package bitget

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/bitget-legacy/currency"
)

// Transaction types and statuses
const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"

	StatusPending = "pending"
	StatusOK      = "ok"
	StatusFailed  = "failed"
)

var transactionStatuses = map[string]string{
	"-3": StatusPending,
	"-2": StatusPending,
	"-1": StatusFailed,
	"0":  StatusPending,
	"1":  StatusPending,
	"2":  StatusOK,
	"3":  StatusPending,
	"4":  StatusPending,
	"5":  StatusPending,
}

var ledgerEntryTypes = map[string]string{
	"transfer":    "transfer",
	"trade":       "trade",
	"rebate":      "rebate",
	"match":       "trade",
	"fee":         "fee",
	"settlement":  "trade",
	"liquidation": "trade",
	"funding":     "fee",
	"margin":      "margin",
}

// ParseTransactionStatus maps a raw deposit or withdrawal status code,
// unknown codes pass through
func ParseTransactionStatus(status string) string {
	if s, ok := transactionStatuses[status]; ok {
		return s
	}
	return status
}

// ParseTransaction normalises a deposit or withdrawal record. Withdrawals
// report their fee suffixed with the lowercase currency id, as in
// "0.0005btc"; deposits are free.
func ParseTransaction(r Record) Transaction {
	currencyID := r.String("currency").String
	code := currency.SafeCode(currencyID)
	tx := Transaction{
		TxID:        r.String("txid").String,
		Currency:    code,
		Amount:      r.Decimal("amount"),
		AddressFrom: r.String("from").String,
		AddressTo:   r.String("to").String,
		Address:     r.String("to").String,
		Status:      ParseTransactionStatus(r.String("status").String),
		Timestamp:   r.Timestamp("timestamp"),
		Fee:         Fee{Currency: code},
	}
	if id := r.String("withdrawal_id"); id.Valid {
		tx.ID = id.String
		tx.Type = TransactionWithdrawal
		if fee := r.String("fee"); fee.Valid && currencyID != "" {
			raw := strings.TrimSpace(strings.Replace(fee.String, strings.ToLower(currencyID), "", 1))
			if d, err := decimal.NewFromString(raw); err == nil {
				tx.Fee.Cost = decimal.NewNullDecimal(d)
			}
		}
		return tx
	}
	tx.ID = r.String("payment_id", "deposit_id").String
	tx.Type = TransactionDeposit
	tx.Fee.Cost = decimal.NewNullDecimal(decimal.Zero)
	return tx
}

// ParseTransactions normalises every deposit and withdrawal record
func ParseTransactions(records []Record) []Transaction {
	txs := make([]Transaction, len(records))
	for i := range records {
		txs[i] = ParseTransaction(records[i])
	}
	return txs
}

// ParseLedgerEntry normalises an account ledger record
func ParseLedgerEntry(r Record) LedgerEntry {
	code := currency.SafeCode(r.String("currency").String)
	e := LedgerEntry{
		ID:        r.String("ledger_id").String,
		Currency:  code,
		Amount:    r.Decimal("amount"),
		After:     r.Decimal("balance"),
		Status:    StatusOK,
		Timestamp: r.Timestamp("timestamp"),
		Fee:       Fee{Cost: r.Decimal("fee"), Currency: code},
	}
	if details, ok := r.Get("details"); ok {
		e.ReferenceID = details.String("order_id").String
	}
	t := r.String("type").String
	if mapped, ok := ledgerEntryTypes[t]; ok {
		t = mapped
	}
	e.Type = t
	return e
}
