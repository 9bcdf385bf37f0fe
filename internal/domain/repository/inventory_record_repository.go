package repository

import "github.com/gestorpro/gestor-api/internal/domain/entity"

// InventoryRecordRepository define a porta para consultar/atualizar o saldo
// de estoque por (produto, armazém). Usado dentro de transações para garantir
// consistência.
type InventoryRecordRepository interface {
	Get(productID, warehouseID string) (*entity.InventoryRecord, error)
	// GetForUpdate bloqueia a linha do saldo (SELECT ... FOR UPDATE) até o
	// fim da transação. Se a linha não existe, devolve saldo zero sem lock;
	// o Upsert subsequente a cria.
	GetForUpdate(productID, warehouseID string) (*entity.InventoryRecord, error)
	Upsert(record *entity.InventoryRecord) error
}
