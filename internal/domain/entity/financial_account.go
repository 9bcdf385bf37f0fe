package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Natureza da conta financeira.
const (
	AccountKindPagar   = "pagar"   // conta a pagar (fornecedor)
	AccountKindReceber = "receber" // conta a receber (cliente)
)

// Origem do lançamento que reconheceu a obrigação.
const (
	AccountOriginCompra   = "compra"
	AccountOriginVenda    = "venda"
	AccountOriginComissao = "comissao"
	AccountOriginManual   = "manual"
)

// Status de conta financeira. Pago e cancelado são terminais.
const (
	AccountStatusPendente         = "pendente"
	AccountStatusParcialmentePago = "parcialmente_pago"
	AccountStatusPago             = "pago"
	AccountStatusAtrasado         = "atrasado"
	AccountStatusCancelado        = "cancelado"
)

// FinancialAccount é uma conta a pagar ou a receber. ValorPago e Status são
// mutados apenas pelo ledger financeiro e pelo reconciliador de status;
// invariante: 0 <= ValorPago <= ValorTotal e ValorPago = soma dos pagamentos.
type FinancialAccount struct {
	ID             string
	Kind           string
	CounterpartyID string // referência ao contato (cliente/fornecedor)
	Origin         string
	Description    string
	ValorTotal     decimal.Decimal
	ValorPago      decimal.Decimal
	DataEmissao    time.Time
	DataVencimento time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Outstanding devolve o saldo em aberto (valor_total - valor_pago).
func (a *FinancialAccount) Outstanding() decimal.Decimal {
	return a.ValorTotal.Sub(a.ValorPago)
}

// IsTerminal indica se a conta está em estado terminal (pago/cancelado).
func (a *FinancialAccount) IsTerminal() bool {
	return a.Status == AccountStatusPago || a.Status == AccountStatusCancelado
}
