// Package notify entrega eventos pós-commit do engine para colaboradores
// externos (e-mail, webhook). A entrega é fire-and-forget: falha ao notificar
// é logada e nunca desfaz o lançamento já commitado.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// LogNotifier implementação padrão: publica os eventos no log estruturado.
// Integrações reais (fila, e-mail) substituem este adaptador sem tocar nos
// casos de uso.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier constrói o notificador.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// MovementRecorded emitido após o commit de uma movimentação de estoque.
func (n *LogNotifier) MovementRecorded(ctx context.Context, movement *entity.StockMovement) {
	n.log.Info().
		Str("event", "movement.recorded").
		Str("movement_id", movement.ID).
		Str("transaction_id", movement.TransactionID).
		Str("product_id", movement.ProductID).
		Str("warehouse_id", movement.WarehouseID).
		Str("type", movement.Type).
		Str("quantity", movement.Quantity.String()).
		Str("actor", movement.CreatedBy).
		Msg("movimentação registrada")
}

// PaymentRecorded emitido após o commit de um pagamento.
func (n *LogNotifier) PaymentRecorded(ctx context.Context, payment *entity.Payment, account *entity.FinancialAccount) {
	n.log.Info().
		Str("event", "payment.recorded").
		Str("payment_id", payment.ID).
		Str("account_id", payment.AccountID).
		Str("valor", payment.Valor.String()).
		Str("status", account.Status).
		Str("actor", payment.CreatedBy).
		Msg("pagamento registrado")
}

// AccountOverdue emitido quando o reconciliador marca uma conta como
// atrasada.
func (n *LogNotifier) AccountOverdue(ctx context.Context, account *entity.FinancialAccount) {
	n.log.Warn().
		Str("event", "account.overdue").
		Str("account_id", account.ID).
		Str("valor_total", account.ValorTotal.String()).
		Str("valor_pago", account.ValorPago.String()).
		Time("data_vencimento", account.DataVencimento).
		Msg("conta financeira em atraso")
}
