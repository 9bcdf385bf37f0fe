package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// BankAccountUseCase casos de uso para contas bancárias. O saldo atual nasce
// igual ao inicial e dali em diante só muda via lançamentos bancários do
// ledger financeiro.
type BankAccountUseCase struct {
	repo       repository.BankAccountRepository
	bankTxRepo repository.BankTransactionRepository
}

// NewBankAccountUseCase constrói o caso de uso.
func NewBankAccountUseCase(repo repository.BankAccountRepository, bankTxRepo repository.BankTransactionRepository) *BankAccountUseCase {
	return &BankAccountUseCase{repo: repo, bankTxRepo: bankTxRepo}
}

// Create cria uma conta bancária com saldo_atual = saldo_inicial.
func (uc *BankAccountUseCase) Create(in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	account := &entity.BankAccount{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SaldoInicial: in.SaldoInicial,
		SaldoAtual:   in.SaldoInicial,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return toBankAccountResponse(account), nil
}

// GetByID obtém uma conta bancária por id.
func (uc *BankAccountUseCase) GetByID(id string) (*dto.BankAccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return toBankAccountResponse(account), nil
}

// List lista contas bancárias.
func (uc *BankAccountUseCase) List(limit, offset int) ([]dto.BankAccountResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BankAccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toBankAccountResponse(a))
	}
	return items, nil
}

// ListTransactions lista o extrato (lançamentos) de uma conta bancária.
func (uc *BankAccountUseCase) ListTransactions(id string, limit, offset int) ([]*entity.BankTransaction, error) {
	return uc.bankTxRepo.ListByBankAccount(id, limit, offset)
}

func toBankAccountResponse(a *entity.BankAccount) *dto.BankAccountResponse {
	return &dto.BankAccountResponse{
		ID:           a.ID,
		Name:         a.Name,
		SaldoInicial: a.SaldoInicial,
		SaldoAtual:   a.SaldoAtual,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
