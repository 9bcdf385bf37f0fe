package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord é o saldo de estoque de um produto em um armazém,
// identificado pelo par único (product_id, warehouse_id). Criado de forma
// preguiçosa (quantidade zero) na primeira movimentação do par; nunca fica
// negativo. Mutado exclusivamente pelo ledger de inventário.
type InventoryRecord struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
