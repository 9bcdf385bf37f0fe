package repository

import "github.com/gestorpro/gestor-api/internal/domain/entity"

// FinancialAccountRepository define a porta de persistência para contas a
// pagar/receber.
type FinancialAccountRepository interface {
	Create(account *entity.FinancialAccount) error
	GetByID(id string) (*entity.FinancialAccount, error)
	// GetForUpdate bloqueia a linha da conta (SELECT ... FOR UPDATE) para o
	// caminho de pagamento e cancelamento.
	GetForUpdate(id string) (*entity.FinancialAccount, error)
	// UpdateBalanceAndStatus grava valor_pago e status (donos: ledger
	// financeiro e reconciliador).
	UpdateBalanceAndStatus(account *entity.FinancialAccount) error
	List(kind, status string, limit, offset int) ([]*entity.FinancialAccount, error)
	// ListNonTerminal devolve contas fora de pago/cancelado para o
	// reconciliador de status.
	ListNonTerminal(limit, offset int) ([]*entity.FinancialAccount, error)
	// UpdateStatus grava o status derivado. A implementação não sobrescreve
	// estados terminais: um pagamento commitado entre a leitura do
	// reconciliador e este update mantém a conta em pago.
	UpdateStatus(id, status string) error
}
