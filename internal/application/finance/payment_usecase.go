package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	domainfin "github.com/gestorpro/gestor-api/internal/domain/finance"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// RecordPaymentUseCase registra pagamentos contra contas a pagar/receber de
// forma transacional. A linha da conta financeira e a da conta bancária ficam
// bloqueadas (SELECT FOR UPDATE) da validação até o commit, nessa ordem, de
// modo que pagamentos concorrentes sobre a mesma conta são serializados e o
// segundo valida contra o valor_pago já atualizado.
type RecordPaymentUseCase struct {
	txRunner TxRunner
	notifier Notifier
}

// NewRecordPaymentUseCase constrói o caso de uso.
func NewRecordPaymentUseCase(txRunner TxRunner, notifier Notifier) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{txRunner: txRunner, notifier: notifier}
}

// PaymentInput entrada para registrar um pagamento.
type PaymentInput struct {
	AccountID      string
	BankAccountID  string
	Valor          decimal.Decimal
	DataPagamento  time.Time
	FormaPagamento string
	Actor          string
	IdempotencyKey string
}

// RecordPayment aplica um pagamento: bloqueia a conta financeira e a conta
// bancária, valida contra o saldo bloqueado, soma valor_pago, grava o
// pagamento, grava a BankTransaction vinculada (entrada para receber, saída
// para pagar) e atualiza o saldo bancário — tudo em uma única transação.
// Devolve o id do pagamento.
func (uc *RecordPaymentUseCase) RecordPayment(ctx context.Context, input PaymentInput) (string, error) {
	if input.AccountID == "" {
		return "", domain.ErrInvalidInput
	}
	if input.BankAccountID == "" {
		return "", domain.ErrMissingBankAccount
	}
	if !input.Valor.IsPositive() {
		return "", domain.ErrNonPositiveAmount
	}
	if input.DataPagamento.IsZero() {
		input.DataPagamento = time.Now()
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:             uuid.New().String(),
		AccountID:      input.AccountID,
		BankAccountID:  input.BankAccountID,
		Valor:          input.Valor,
		DataPagamento:  input.DataPagamento,
		FormaPagamento: input.FormaPagamento,
		CreatedBy:      input.Actor,
		CreatedAt:      now,
		IdempotencyKey: input.IdempotencyKey,
	}
	var paidAccount *entity.FinancialAccount

	err := uc.txRunner.RunFinance(ctx, func(
		accountRepo repository.FinancialAccountRepository,
		paymentRepo repository.PaymentRepository,
		bankAccountRepo repository.BankAccountRepository,
		bankTxRepo repository.BankTransactionRepository,
	) error {
		// Ordem fixa de locks: conta financeira, depois conta bancária.
		account, err := accountRepo.GetForUpdate(input.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound
		}
		bankAccount, err := bankAccountRepo.GetForUpdate(input.BankAccountID)
		if err != nil {
			return err
		}
		if bankAccount == nil {
			return domain.ErrNotFound
		}

		if err := domainfin.ValidatePayment(account, input.Valor, input.BankAccountID); err != nil {
			return err
		}

		account.ValorPago = account.ValorPago.Add(input.Valor)
		account.Status = domainfin.PaymentStatus(account.ValorPago, account.ValorTotal)
		account.UpdatedAt = now
		if err := accountRepo.UpdateBalanceAndStatus(account); err != nil {
			return err
		}

		if err := paymentRepo.Create(payment); err != nil {
			return err
		}

		tipo := domainfin.BankTxTipoFor(account.Kind)
		bankTx := &entity.BankTransaction{
			ID:            uuid.New().String(),
			BankAccountID: bankAccount.ID,
			Tipo:          tipo,
			Valor:         input.Valor,
			PaymentID:     payment.ID,
			AccountID:     account.ID,
			Description:   account.Description,
			CreatedAt:     now,
		}
		if err := bankTxRepo.Create(bankTx); err != nil {
			return err
		}

		if tipo == entity.BankTxTipoEntrada {
			bankAccount.SaldoAtual = bankAccount.SaldoAtual.Add(input.Valor)
		} else {
			bankAccount.SaldoAtual = bankAccount.SaldoAtual.Sub(input.Valor)
		}
		bankAccount.UpdatedAt = now
		if err := bankAccountRepo.UpdateBalance(bankAccount); err != nil {
			return err
		}

		paidAccount = account
		return nil
	})
	if err != nil {
		return "", err
	}

	if uc.notifier != nil {
		uc.notifier.PaymentRecorded(ctx, payment, paidAccount)
	}
	return payment.ID, nil
}
