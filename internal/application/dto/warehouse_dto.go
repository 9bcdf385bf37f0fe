package dto

import "time"

// CreateWarehouseRequest entrada para criar um armazém.
type CreateWarehouseRequest struct {
	Name string `json:"name"`
}

// UpdateWarehouseRequest entrada para atualizar um armazém.
type UpdateWarehouseRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// WarehouseResponse saída de um armazém.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de armazéns.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
