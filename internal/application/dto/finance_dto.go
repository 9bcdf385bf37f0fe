package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest body para POST /api/finance/accounts.
type CreateAccountRequest struct {
	Kind           string          `json:"kind"` // pagar | receber
	CounterpartyID string          `json:"counterparty_id,omitempty"`
	Origin         string          `json:"origin"` // compra | venda | comissao | manual
	Description    string          `json:"description,omitempty"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	DataEmissao    time.Time       `json:"data_emissao"`
	DataVencimento time.Time       `json:"data_vencimento"`
}

// AccountResponse saída de uma conta financeira.
type AccountResponse struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	CounterpartyID string          `json:"counterparty_id,omitempty"`
	Origin         string          `json:"origin"`
	Description    string          `json:"description,omitempty"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	ValorPago      decimal.Decimal `json:"valor_pago"`
	Outstanding    decimal.Decimal `json:"saldo_aberto"`
	DataEmissao    time.Time       `json:"data_emissao"`
	DataVencimento time.Time       `json:"data_vencimento"`
	Status         string          `json:"status"`
}

// RecordPaymentRequest body para POST /api/finance/payments.
type RecordPaymentRequest struct {
	AccountID      string          `json:"account_id"`
	BankAccountID  string          `json:"bank_account_id"`
	Valor          decimal.Decimal `json:"valor"`
	DataPagamento  time.Time       `json:"data_pagamento"`
	FormaPagamento string          `json:"forma_pagamento"`
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
}

// RecordPaymentResponse resposta de pagamento aceito.
type RecordPaymentResponse struct {
	PaymentID string `json:"payment_id"`
}

// PaymentResponse linha do histórico de pagamentos de uma conta.
type PaymentResponse struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"account_id"`
	BankAccountID  string          `json:"bank_account_id"`
	Valor          decimal.Decimal `json:"valor"`
	DataPagamento  time.Time       `json:"data_pagamento"`
	FormaPagamento string          `json:"forma_pagamento"`
	CreatedBy      string          `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ReconcileResponse resultado de uma passada do reconciliador.
type ReconcileResponse struct {
	Changed int `json:"changed"`
}
