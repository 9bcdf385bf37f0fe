package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementTypeEntrada       = "entrada"
	MovementTypeSaida         = "saida"
	MovementTypeAjuste        = "ajuste"
	MovementTypeTransferencia = "transferencia"
)

// StockMovement é o registro imutável de uma movimentação de estoque
// (append-only): uma vez gravado nunca é alterado nem removido. É a trilha
// de auditoria a partir da qual o saldo de cada (produto, armazém) deve ser
// reconstruível somando as quantidades com sinal.
//
// Transferências geram duas linhas com o mesmo TransactionID: quantidade
// negativa no armazém de origem e positiva no destino.
type StockMovement struct {
	ID             string
	TransactionID  string // agrupa as linhas de um mesmo lançamento
	ProductID      string
	WarehouseID    string
	Type           string
	Quantity       decimal.Decimal // com sinal: entrada/destino +, saída/origem -, ajuste ±
	Description    string
	CreatedBy      string // ator informado pelo provedor de identidade
	CreatedAt      time.Time
	IdempotencyKey string // opcional; repetição detectada por índice único
}
