package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// QueryUseCase leituras do ledger de inventário (relatórios/exportação):
// saldo atual, histórico de movimentações e conferência de conservação.
// Opera fora de transação, sobre estado já commitado.
type QueryUseCase struct {
	recordRepo repository.InventoryRecordRepository
	movRepo    repository.StockMovementRepository
}

// NewQueryUseCase constrói o caso de uso de leitura.
func NewQueryUseCase(recordRepo repository.InventoryRecordRepository, movRepo repository.StockMovementRepository) *QueryUseCase {
	return &QueryUseCase{recordRepo: recordRepo, movRepo: movRepo}
}

// GetStock devolve o saldo atual de um (produto, armazém); zero se o par
// nunca foi movimentado.
func (uc *QueryUseCase) GetStock(productID, warehouseID string) (*entity.InventoryRecord, error) {
	return uc.recordRepo.Get(productID, warehouseID)
}

// ListByWarehouse lista movimentações de um armazém em um intervalo de datas.
func (uc *QueryUseCase) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListByWarehouse(warehouseID, from, to, limit, offset)
}

// ListByProduct lista movimentações de um produto em um intervalo de datas.
func (uc *QueryUseCase) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListByProduct(productID, from, to, limit, offset)
}

// BalanceCheck resultado da conferência entre o saldo materializado e a soma
// do histórico de movimentações.
type BalanceCheck struct {
	ProductID    string
	WarehouseID  string
	Materialized decimal.Decimal
	Recomputed   decimal.Decimal
	Consistent   bool
}

// VerifyBalance recomputa o saldo de uma chave somando as quantidades com
// sinal do histórico e compara com o saldo materializado. Os dois devem
// coincidir sempre; divergência indica corrupção e pede intervenção.
func (uc *QueryUseCase) VerifyBalance(productID, warehouseID string) (*BalanceCheck, error) {
	record, err := uc.recordRepo.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	sum, err := uc.movRepo.SumByKey(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return &BalanceCheck{
		ProductID:    productID,
		WarehouseID:  warehouseID,
		Materialized: record.Quantity,
		Recomputed:   sum,
		Consistent:   record.Quantity.Equal(sum),
	}, nil
}
