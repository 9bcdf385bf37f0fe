package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestorpro/gestor-api/internal/application/finance"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// Ensure TxRunner implementa os dois runners da aplicação.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ finance.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL. Todas as
// escritas de um lançamento vivem na mesma transação, então compensação
// degenera em rollback: nunca fica meio lançamento gravado.
//
// Cada transação recebe um lock_timeout local; expirar esperando uma linha
// bloqueada devolve domain.ErrBusy, seguro de repetir (nada foi gravado).
type TxRunner struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool, lockTimeout time.Duration) *TxRunner {
	if lockTimeout <= 0 {
		lockTimeout = 3 * time.Second
	}
	return &TxRunner{pool: pool, lockTimeout: lockTimeout}
}

func (r *TxRunner) begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	// SET LOCAL vale só para esta transação.
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("set lock_timeout: %w", err)
	}
	return tx, nil
}

func (r *TxRunner) finish(ctx context.Context, tx pgx.Tx, err error) error {
	if err != nil {
		if isLockTimeout(err) {
			return domain.ErrBusy
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run inicia uma transação com os repositórios de inventário atados a ela e
// faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	recordRepo repository.InventoryRecordRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return r.finish(ctx, tx, fn(
		NewInventoryRecordRepository(tx),
		NewStockMovementRepository(tx),
	))
}

// RunFinance inicia uma transação com os repositórios financeiros atados a
// ela (pagamento + lançamento bancário commitam juntos).
func (r *TxRunner) RunFinance(ctx context.Context, fn func(
	accountRepo repository.FinancialAccountRepository,
	paymentRepo repository.PaymentRepository,
	bankAccountRepo repository.BankAccountRepository,
	bankTxRepo repository.BankTransactionRepository,
) error) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return r.finish(ctx, tx, fn(
		NewFinancialAccountRepository(tx),
		NewPaymentRepository(tx),
		NewBankAccountRepository(tx),
		NewBankTransactionRepository(tx),
	))
}
