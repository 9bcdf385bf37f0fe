package repository

import "github.com/gestorpro/gestor-api/internal/domain/entity"

// PaymentRepository define a porta de persistência para pagamentos
// (append-only).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByAccount(accountID string, limit, offset int) ([]*entity.Payment, error)
}
