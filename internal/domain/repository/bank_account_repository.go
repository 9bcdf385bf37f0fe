package repository

import "github.com/gestorpro/gestor-api/internal/domain/entity"

// BankAccountRepository define a porta de persistência para contas bancárias.
type BankAccountRepository interface {
	Create(account *entity.BankAccount) error
	GetByID(id string) (*entity.BankAccount, error)
	// GetForUpdate bloqueia a linha do saldo bancário durante o lançamento
	// do pagamento.
	GetForUpdate(id string) (*entity.BankAccount, error)
	UpdateBalance(account *entity.BankAccount) error
	List(limit, offset int) ([]*entity.BankAccount, error)
}
