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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementação de PaymentRepository sobre PostgreSQL. Tabela
// append-only.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository constrói o adaptador. Passar pool ou tx.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste um pagamento. Chave de idempotência repetida devolve
// domain.ErrDuplicatePosting.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, account_id, bank_account_id, valor, data_pagamento, forma_pagamento, created_by, created_at, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	idemKey := (*string)(nil)
	if payment.IdempotencyKey != "" {
		idemKey = &payment.IdempotencyKey
	}
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.AccountID, payment.BankAccountID, payment.Valor,
		payment.DataPagamento, payment.FormaPagamento, payment.CreatedBy,
		payment.CreatedAt, idemKey)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePosting
		}
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// GetByID obtém um pagamento por id; nil se não existe.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `
		SELECT id, account_id, bank_account_id, valor, data_pagamento, forma_pagamento, created_by, created_at, COALESCE(idempotency_key, '')
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.AccountID, &p.BankAccountID, &p.Valor,
		&p.DataPagamento, &p.FormaPagamento, &p.CreatedBy, &p.CreatedAt, &p.IdempotencyKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByAccount lista os pagamentos de uma conta financeira.
func (r *PaymentRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, account_id, bank_account_id, valor, data_pagamento, forma_pagamento, created_by, created_at, COALESCE(idempotency_key, '')
		FROM payments WHERE account_id = $1
		ORDER BY data_pagamento DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.AccountID, &p.BankAccountID, &p.Valor,
			&p.DataPagamento, &p.FormaPagamento, &p.CreatedBy, &p.CreatedAt, &p.IdempotencyKey); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
