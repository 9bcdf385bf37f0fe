package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas pelo registro (texto livre vindo do caixa;
// estas são as usuais).
const (
	FormaPagamentoDinheiro      = "dinheiro"
	FormaPagamentoPix           = "pix"
	FormaPagamentoBoleto        = "boleto"
	FormaPagamentoCartao        = "cartao"
	FormaPagamentoTransferencia = "transferencia"
)

// Payment é o registro imutável de um pagamento contra uma conta financeira.
// Todo pagamento confirmado tem uma BankTransaction vinculada, gravada na
// mesma transação (nunca um sem o outro).
type Payment struct {
	ID             string
	AccountID      string
	BankAccountID  string
	Valor          decimal.Decimal
	DataPagamento  time.Time
	FormaPagamento string
	CreatedBy      string
	CreatedAt      time.Time
	IdempotencyKey string
}
