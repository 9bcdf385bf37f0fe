// Package inventory contém as regras puras de validação de movimentações de
// estoque. As funções operam sobre um snapshot de saldo lido pelo chamador
// (sob lock de linha) e não fazem I/O.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain"
)

// ValidateEntrada aceita qualquer quantidade inteira positiva.
func ValidateEntrada(quantity decimal.Decimal) error {
	if !quantity.IsPositive() || !quantity.IsInteger() {
		return domain.ErrInvalidInput
	}
	return nil
}

// ValidateSaida aceita apenas se a quantidade solicitada não exceder o saldo
// disponível. Se o registro de estoque ainda não existe, o chamador passa
// saldo zero e a saída é rejeitada.
func ValidateSaida(quantity, available decimal.Decimal) error {
	if !quantity.IsPositive() || !quantity.IsInteger() {
		return domain.ErrInvalidInput
	}
	if quantity.GreaterThan(available) {
		return &domain.InsufficientStockError{Available: available}
	}
	return nil
}

// ValidateAjuste segue a convenção de quantidade com sinal: ajuste positivo
// soma, negativo subtrai. Ajuste negativo não pode deixar o saldo abaixo de
// zero. Ajuste zero não é movimentação.
func ValidateAjuste(quantity, available decimal.Decimal) error {
	if quantity.IsZero() || !quantity.IsInteger() {
		return domain.ErrInvalidInput
	}
	if quantity.IsNegative() {
		return ValidateSaida(quantity.Neg(), available)
	}
	return nil
}

// ValidateTransferencia exige armazéns distintos e saldo suficiente na origem.
func ValidateTransferencia(origemID, destinoID string, quantity, availableOrigem decimal.Decimal) error {
	if origemID == "" || destinoID == "" {
		return domain.ErrInvalidInput
	}
	if origemID == destinoID {
		return domain.ErrInvalidTransfer
	}
	return ValidateSaida(quantity, availableOrigem)
}
