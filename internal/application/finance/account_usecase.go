package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// AccountUseCase ciclo de vida de contas a pagar/receber: reconhecimento da
// obrigação, consulta e cancelamento. Pagamentos ficam no
// RecordPaymentUseCase.
type AccountUseCase struct {
	txRunner    TxRunner
	accountRepo repository.FinancialAccountRepository
	paymentRepo repository.PaymentRepository
}

// NewAccountUseCase constrói o caso de uso.
func NewAccountUseCase(txRunner TxRunner, accountRepo repository.FinancialAccountRepository, paymentRepo repository.PaymentRepository) *AccountUseCase {
	return &AccountUseCase{txRunner: txRunner, accountRepo: accountRepo, paymentRepo: paymentRepo}
}

// CreateAccountInput entrada para reconhecer uma obrigação.
type CreateAccountInput struct {
	Kind           string
	CounterpartyID string
	Origin         string
	Description    string
	ValorTotal     decimal.Decimal
	DataEmissao    time.Time
	DataVencimento time.Time
}

// CreateAccount cria a conta em pendente com valor_pago zero.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*entity.FinancialAccount, error) {
	if input.Kind != entity.AccountKindPagar && input.Kind != entity.AccountKindReceber {
		return nil, domain.ErrInvalidInput
	}
	switch input.Origin {
	case entity.AccountOriginCompra, entity.AccountOriginVenda, entity.AccountOriginComissao, entity.AccountOriginManual:
	default:
		return nil, domain.ErrInvalidInput
	}
	if !input.ValorTotal.IsPositive() {
		return nil, domain.ErrNonPositiveAmount
	}
	if input.DataEmissao.IsZero() || input.DataVencimento.IsZero() || input.DataVencimento.Before(input.DataEmissao) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	account := &entity.FinancialAccount{
		ID:             uuid.New().String(),
		Kind:           input.Kind,
		CounterpartyID: input.CounterpartyID,
		Origin:         input.Origin,
		Description:    input.Description,
		ValorTotal:     input.ValorTotal,
		ValorPago:      decimal.Zero,
		DataEmissao:    input.DataEmissao,
		DataVencimento: input.DataVencimento,
		Status:         entity.AccountStatusPendente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount consulta uma conta por id.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*entity.FinancialAccount, error) {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

// ListAccounts lista contas com filtros opcionais de natureza e status.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, kind, status string, limit, offset int) ([]*entity.FinancialAccount, error) {
	return uc.accountRepo.List(kind, status, limit, offset)
}

// ListPayments lista os pagamentos de uma conta.
func (uc *AccountUseCase) ListPayments(ctx context.Context, accountID string, limit, offset int) ([]*entity.Payment, error) {
	return uc.paymentRepo.ListByAccount(accountID, limit, offset)
}

// CancelAccount transiciona a conta para cancelado. Só é permitido enquanto
// nenhum pagamento foi aplicado (valor_pago zero); a linha fica bloqueada
// durante a checagem para não correr contra um pagamento simultâneo.
func (uc *AccountUseCase) CancelAccount(ctx context.Context, id string) error {
	return uc.txRunner.RunFinance(ctx, func(
		accountRepo repository.FinancialAccountRepository,
		_ repository.PaymentRepository,
		_ repository.BankAccountRepository,
		_ repository.BankTransactionRepository,
	) error {
		account, err := accountRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound
		}
		if account.IsTerminal() {
			return domain.ErrAccountClosed
		}
		if account.ValorPago.IsPositive() {
			return domain.ErrAccountHasPayments
		}
		return accountRepo.UpdateStatus(id, entity.AccountStatusCancelado)
	})
}
