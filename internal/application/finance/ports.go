package finance

import (
	"context"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco com os
// repositórios financeiros atados a ela. Pagamento, lançamento bancário e
// atualização de saldos fazem commit juntos ou nada é gravado — nunca existe
// pagamento confirmado sem a sua BankTransaction.
type TxRunner interface {
	RunFinance(ctx context.Context, fn func(
		accountRepo repository.FinancialAccountRepository,
		paymentRepo repository.PaymentRepository,
		bankAccountRepo repository.BankAccountRepository,
		bankTxRepo repository.BankTransactionRepository,
	) error) error
}

// Notifier recebe eventos pós-commit (fire-and-forget).
type Notifier interface {
	PaymentRecorded(ctx context.Context, payment *entity.Payment, account *entity.FinancialAccount)
	AccountOverdue(ctx context.Context, account *entity.FinancialAccount)
}
