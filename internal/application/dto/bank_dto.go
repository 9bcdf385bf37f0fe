package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest entrada para criar uma conta bancária.
type CreateBankAccountRequest struct {
	Name         string          `json:"name"`
	SaldoInicial decimal.Decimal `json:"saldo_inicial"`
}

// BankAccountResponse saída de uma conta bancária.
type BankAccountResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SaldoInicial decimal.Decimal `json:"saldo_inicial"`
	SaldoAtual   decimal.Decimal `json:"saldo_atual"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BankTransactionResponse linha do extrato de uma conta bancária.
type BankTransactionResponse struct {
	ID            string          `json:"id"`
	BankAccountID string          `json:"bank_account_id"`
	Tipo          string          `json:"tipo"`
	Valor         decimal.Decimal `json:"valor"`
	PaymentID     string          `json:"payment_id"`
	AccountID     string          `json:"account_id"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
