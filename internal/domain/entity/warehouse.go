package entity

import "time"

// Status de armazém.
const (
	WarehouseStatusAtivo   = "ativo"
	WarehouseStatusInativo = "inativo"
)

// Warehouse representa um armazém (depósito) onde o estoque é mantido.
type Warehouse struct {
	ID        string
	Name      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
