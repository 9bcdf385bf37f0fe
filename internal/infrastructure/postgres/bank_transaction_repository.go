package postgres

import (
	"context"
	"fmt"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

var _ repository.BankTransactionRepository = (*BankTransactionRepo)(nil)

// BankTransactionRepo implementação de BankTransactionRepository sobre
// PostgreSQL. Tabela append-only: o extrato é a prova do saldo.
type BankTransactionRepo struct {
	q Querier
}

// NewBankTransactionRepository constrói o adaptador. Passar pool ou tx.
func NewBankTransactionRepository(q Querier) *BankTransactionRepo {
	return &BankTransactionRepo{q: q}
}

// Create persiste um lançamento bancário.
func (r *BankTransactionRepo) Create(tx *entity.BankTransaction) error {
	query := `
		INSERT INTO bank_transactions (id, bank_account_id, tipo, valor, payment_id, account_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.BankAccountID, tx.Tipo, tx.Valor, tx.PaymentID, tx.AccountID,
		tx.Description, tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("create bank transaction: %w", err)
	}
	return nil
}

// ListByBankAccount lista o extrato de uma conta bancária.
func (r *BankTransactionRepo) ListByBankAccount(bankAccountID string, limit, offset int) ([]*entity.BankTransaction, error) {
	query := `
		SELECT id, bank_account_id, tipo, valor, payment_id, account_id, description, created_at
		FROM bank_transactions WHERE bank_account_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, bankAccountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bank transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankTransaction
	for rows.Next() {
		var t entity.BankTransaction
		if err := rows.Scan(&t.ID, &t.BankAccountID, &t.Tipo, &t.Valor, &t.PaymentID,
			&t.AccountID, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bank transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
