package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

// BankAccountRepo implementação de BankAccountRepository sobre PostgreSQL.
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository constrói o adaptador. Passar pool ou tx.
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

// Create persiste uma conta bancária.
func (r *BankAccountRepo) Create(account *entity.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (id, name, saldo_inicial, saldo_atual, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.SaldoInicial, account.SaldoAtual,
		account.CreatedAt, account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create bank account: %w", err)
	}
	return nil
}

// GetByID obtém uma conta bancária por id; nil se não existe.
func (r *BankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	return r.get(id, false)
}

// GetForUpdate obtém a conta e bloqueia a linha até o fim da transação.
func (r *BankAccountRepo) GetForUpdate(id string) (*entity.BankAccount, error) {
	return r.get(id, true)
}

func (r *BankAccountRepo) get(id string, forUpdate bool) (*entity.BankAccount, error) {
	query := `
		SELECT id, name, saldo_inicial, saldo_atual, created_at, updated_at
		FROM bank_accounts WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var a entity.BankAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.SaldoInicial, &a.SaldoAtual, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account: %w", err)
	}
	return &a, nil
}

// UpdateBalance grava o saldo atual.
func (r *BankAccountRepo) UpdateBalance(account *entity.BankAccount) error {
	query := `
		UPDATE bank_accounts SET saldo_atual = $2, updated_at = $3
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		account.ID, account.SaldoAtual, account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update bank account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista contas bancárias.
func (r *BankAccountRepo) List(limit, offset int) ([]*entity.BankAccount, error) {
	query := `
		SELECT id, name, saldo_inicial, saldo_atual, created_at, updated_at
		FROM bank_accounts ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankAccount
	for rows.Next() {
		var a entity.BankAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.SaldoInicial, &a.SaldoAtual, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
