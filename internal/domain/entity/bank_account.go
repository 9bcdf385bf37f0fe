package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount é uma conta bancária da empresa. SaldoAtual é derivado:
// saldo_inicial + soma das entradas - soma das saídas em bank_transactions.
type BankAccount struct {
	ID           string
	Name         string
	SaldoInicial decimal.Decimal
	SaldoAtual   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
