package repository

import "github.com/gestorpro/gestor-api/internal/domain/entity"

// BankTransactionRepository define a porta de persistência para lançamentos
// bancários (append-only).
type BankTransactionRepository interface {
	Create(tx *entity.BankTransaction) error
	ListByBankAccount(bankAccountID string, limit, offset int) ([]*entity.BankTransaction, error)
}
