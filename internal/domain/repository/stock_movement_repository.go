package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// StockMovementRepository define a porta de persistência para a trilha
// imutável de movimentações de estoque (append-only: sem update nem delete).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	// SumByKey soma as quantidades com sinal do histórico de um
	// (produto, armazém) — usada para conferir o saldo materializado.
	SumByKey(productID, warehouseID string) (decimal.Decimal, error)
}
