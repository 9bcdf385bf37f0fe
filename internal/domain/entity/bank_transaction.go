package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direção de uma movimentação bancária.
const (
	BankTxTipoEntrada = "entrada"
	BankTxTipoSaida   = "saida"
)

// BankTransaction é o lançamento imutável contra uma conta bancária, sempre
// vinculado ao pagamento/conta financeira que o originou. Pagamento de conta
// a receber gera entrada; de conta a pagar gera saída.
type BankTransaction struct {
	ID            string
	BankAccountID string
	Tipo          string
	Valor         decimal.Decimal
	PaymentID     string
	AccountID     string
	Description   string
	CreatedAt     time.Time
}
