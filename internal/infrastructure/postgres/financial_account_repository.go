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

var _ repository.FinancialAccountRepository = (*FinancialAccountRepo)(nil)

const financialAccountColumns = `id, kind, counterparty_id, origin, description, valor_total, valor_pago, data_emissao, data_vencimento, status, created_at, updated_at`

// FinancialAccountRepo implementação de FinancialAccountRepository sobre
// PostgreSQL (usável com pool ou tx).
type FinancialAccountRepo struct {
	q Querier
}

// NewFinancialAccountRepository constrói o adaptador. Passar pool ou tx.
func NewFinancialAccountRepository(q Querier) *FinancialAccountRepo {
	return &FinancialAccountRepo{q: q}
}

// Create persiste uma conta financeira.
func (r *FinancialAccountRepo) Create(account *entity.FinancialAccount) error {
	query := `
		INSERT INTO financial_accounts (` + financialAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Kind, account.CounterpartyID, account.Origin, account.Description,
		account.ValorTotal, account.ValorPago, account.DataEmissao, account.DataVencimento,
		account.Status, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create financial account: %w", err)
	}
	return nil
}

// GetByID obtém uma conta por id; nil se não existe.
func (r *FinancialAccountRepo) GetByID(id string) (*entity.FinancialAccount, error) {
	return r.get(id, false)
}

// GetForUpdate obtém a conta e bloqueia a linha (SELECT ... FOR UPDATE) até o
// fim da transação: é o que serializa pagamentos concorrentes sobre a mesma
// conta.
func (r *FinancialAccountRepo) GetForUpdate(id string) (*entity.FinancialAccount, error) {
	return r.get(id, true)
}

func (r *FinancialAccountRepo) get(id string, forUpdate bool) (*entity.FinancialAccount, error) {
	query := `
		SELECT ` + financialAccountColumns + `
		FROM financial_accounts WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var a entity.FinancialAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Kind, &a.CounterpartyID, &a.Origin, &a.Description,
		&a.ValorTotal, &a.ValorPago, &a.DataEmissao, &a.DataVencimento,
		&a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial account: %w", err)
	}
	return &a, nil
}

// UpdateBalanceAndStatus grava valor_pago e status. A coluna tem
// CHECK (valor_pago >= 0 AND valor_pago <= valor_total) como última linha de
// defesa do invariante.
func (r *FinancialAccountRepo) UpdateBalanceAndStatus(account *entity.FinancialAccount) error {
	query := `
		UPDATE financial_accounts
		SET valor_pago = $2, status = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		account.ID, account.ValorPago, account.Status, account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update financial account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista contas com filtros opcionais de natureza e status.
func (r *FinancialAccountRepo) List(kind, status string, limit, offset int) ([]*entity.FinancialAccount, error) {
	query := `
		SELECT ` + financialAccountColumns + `
		FROM financial_accounts WHERE 1=1`
	args := []any{}
	pos := 1
	if kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, kind)
		pos++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY data_vencimento LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.queryList(query, args...)
}

// ListNonTerminal devolve contas fora de pago/cancelado, paginadas em ordem
// estável para o reconciliador.
func (r *FinancialAccountRepo) ListNonTerminal(limit, offset int) ([]*entity.FinancialAccount, error) {
	query := `
		SELECT ` + financialAccountColumns + `
		FROM financial_accounts
		WHERE status NOT IN ($1, $2)
		ORDER BY id LIMIT $3 OFFSET $4`
	return r.queryList(query, entity.AccountStatusPago, entity.AccountStatusCancelado, limit, offset)
}

// UpdateStatus grava o status derivado sem nunca sobrescrever um estado
// terminal gravado por outra transação entre a leitura e este update.
func (r *FinancialAccountRepo) UpdateStatus(id, status string) error {
	query := `
		UPDATE financial_accounts
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status NOT IN ($3, $4)`
	_, err := r.q.Exec(context.Background(), query, id, status,
		entity.AccountStatusPago, entity.AccountStatusCancelado)
	if err != nil {
		return fmt.Errorf("update financial account status: %w", err)
	}
	return nil
}

func (r *FinancialAccountRepo) queryList(query string, args ...any) ([]*entity.FinancialAccount, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list financial accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinancialAccount
	for rows.Next() {
		var a entity.FinancialAccount
		if err := rows.Scan(&a.ID, &a.Kind, &a.CounterpartyID, &a.Origin, &a.Description,
			&a.ValorTotal, &a.ValorPago, &a.DataEmissao, &a.DataVencimento,
			&a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan financial account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
