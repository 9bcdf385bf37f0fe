// Package finance contém as regras puras do ledger financeiro: validação de
// pagamentos contra o snapshot da conta e a máquina de estados de status.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// ValidatePayment valida um pagamento contra o snapshot da conta financeira.
// Aceita apenas 0 < valor <= (valor_total - valor_pago) e exige conta
// bancária de destino/origem.
func ValidatePayment(account *entity.FinancialAccount, valor decimal.Decimal, bankAccountID string) error {
	if bankAccountID == "" {
		return domain.ErrMissingBankAccount
	}
	if !valor.IsPositive() {
		return domain.ErrNonPositiveAmount
	}
	if account.Status == entity.AccountStatusCancelado {
		return domain.ErrAccountClosed
	}
	if outstanding := account.Outstanding(); valor.GreaterThan(outstanding) {
		return &domain.PaymentExceedsBalanceError{Outstanding: outstanding}
	}
	return nil
}

// BankTxTipoFor devolve a direção da movimentação bancária vinculada a um
// pagamento: conta a receber gera entrada, conta a pagar gera saída.
func BankTxTipoFor(accountKind string) string {
	if accountKind == entity.AccountKindReceber {
		return entity.BankTxTipoEntrada
	}
	return entity.BankTxTipoSaida
}
