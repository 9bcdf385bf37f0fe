package inventory

import (
	"context"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. É a unidade atômica de um lançamento:
// lock de saldo, validação, escrita de saldo e trilha de auditoria fazem
// commit juntos ou nada é gravado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		recordRepo repository.InventoryRecordRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// Notifier recebe eventos pós-commit (fire-and-forget): falha ao notificar
// nunca desfaz o lançamento.
type Notifier interface {
	MovementRecorded(ctx context.Context, movement *entity.StockMovement)
}
