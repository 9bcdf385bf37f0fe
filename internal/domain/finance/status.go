package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// ComputeStatus recalcula o status derivado de uma conta financeira a partir
// de valor_pago, valor_total e data de vencimento. Estados terminais (pago,
// cancelado) são preservados. Função pura e idempotente: o reconciliador pode
// executá-la quantas vezes quiser sem alterar o resultado.
func ComputeStatus(current string, valorPago, valorTotal decimal.Decimal, vencimento time.Time, today time.Time) string {
	if current == entity.AccountStatusCancelado {
		return entity.AccountStatusCancelado
	}
	if valorPago.GreaterThanOrEqual(valorTotal) {
		return entity.AccountStatusPago
	}
	// Vencida e não quitada: atrasado, mesmo que parcialmente paga.
	if truncateDay(vencimento).Before(truncateDay(today)) {
		return entity.AccountStatusAtrasado
	}
	if valorPago.IsPositive() {
		return entity.AccountStatusParcialmentePago
	}
	return entity.AccountStatusPendente
}

// PaymentStatus devolve o status resultante da aplicação de um pagamento
// (caminho do ledger financeiro; o reconciliador cuida do atraso).
func PaymentStatus(valorPago, valorTotal decimal.Decimal) string {
	if valorPago.GreaterThanOrEqual(valorTotal) {
		return entity.AccountStatusPago
	}
	return entity.AccountStatusParcialmentePago
}

// truncateDay zera a parte de hora para comparar apenas datas de vencimento.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
