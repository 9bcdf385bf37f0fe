package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências de infraestrutura).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidTransfer    = errors.New("transferência exige armazéns de origem e destino distintos")
	ErrNonPositiveAmount  = errors.New("valor deve ser maior que zero")
	ErrMissingBankAccount = errors.New("conta bancária é obrigatória para registrar pagamento")
	ErrAccountClosed      = errors.New("conta financeira encerrada (paga ou cancelada)")
	ErrAccountHasPayments = errors.New("conta financeira já possui pagamentos registrados")
	ErrWarehouseInUse     = errors.New("armazém possui registros de estoque vinculados")
	ErrBusy               = errors.New("registro em uso por outra operação; tente novamente")
	ErrDuplicatePosting   = errors.New("lançamento já registrado (chave de idempotência repetida)")
)

// InsufficientStockError rejeição de saída/transferência por saldo insuficiente.
// Carrega o saldo disponível para que o chamador mostre uma mensagem acionável.
type InsufficientStockError struct {
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente: disponível %s", e.Available.String())
}

// PaymentExceedsBalanceError rejeição de pagamento acima do saldo em aberto.
// Outstanding é valor_total - valor_pago no instante da validação.
type PaymentExceedsBalanceError struct {
	Outstanding decimal.Decimal
}

func (e *PaymentExceedsBalanceError) Error() string {
	return fmt.Sprintf("pagamento excede o saldo em aberto: restante %s", e.Outstanding.String())
}
