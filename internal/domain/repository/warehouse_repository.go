package repository

import "github.com/gestorpro/gestor-api/internal/domain/entity"

// WarehouseRepository define a porta de persistência para armazéns.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
	// Delete remove o armazém apenas se nenhum registro de estoque o
	// referencia; caso contrário devolve domain.ErrWarehouseInUse.
	Delete(id string) error
}
