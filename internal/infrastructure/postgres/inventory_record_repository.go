package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

var _ repository.InventoryRecordRepository = (*InventoryRecordRepo)(nil)

// InventoryRecordRepo implementação de InventoryRecordRepository sobre
// PostgreSQL (usável com pool ou tx).
type InventoryRecordRepo struct {
	q Querier
}

// NewInventoryRecordRepository constrói o adaptador. Passar pool ou tx.
func NewInventoryRecordRepository(q Querier) *InventoryRecordRepo {
	return &InventoryRecordRepo{q: q}
}

// Get obtém o saldo atual de um produto em um armazém. Par nunca
// movimentado devolve registro com quantidade zero.
func (r *InventoryRecordRepo) Get(productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory_records WHERE product_id = $1 AND warehouse_id = $2`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryRecord{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	return &rec, nil
}

// GetForUpdate obtém o saldo e bloqueia a linha (SELECT ... FOR UPDATE) até o
// fim da transação. FOR UPDATE não bloqueia linha que não existe: o par nunca
// movimentado é materializado com saldo zero antes do lock, senão dois
// primeiros lançamentos concorrentes sobre a mesma chave leem zero e um dos
// incrementos se perde. O ON CONFLICT DO NOTHING absorve a criação
// concorrente e a releitura enxerga a linha já commitada.
func (r *InventoryRecordRepo) GetForUpdate(productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory_records WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		insert := `
			INSERT INTO inventory_records (product_id, warehouse_id, quantity, updated_at)
			VALUES ($1, $2, 0, now())
			ON CONFLICT (product_id, warehouse_id) DO NOTHING`
		if _, insErr := r.q.Exec(context.Background(), insert, productID, warehouseID); insErr != nil {
			return nil, fmt.Errorf("materialize inventory record: %w", insErr)
		}
		err = r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
			&rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("get inventory record for update: %w", err)
	}
	return &rec, nil
}

// Upsert insere ou atualiza o saldo do par (produto, armazém). A coluna tem
// CHECK (quantity >= 0): mesmo um bug no caminho de validação não consegue
// gravar saldo negativo.
func (r *InventoryRecordRepo) Upsert(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		record.ProductID, record.WarehouseID, record.Quantity, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert inventory record: %w", err)
	}
	return nil
}
