package inventory_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// ValidateEntrada
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateEntrada_QuantidadePositiva(t *testing.T) {
	assert.NoError(t, inventory.ValidateEntrada(decimal.NewFromInt(10)),
		"entrada com quantidade inteira positiva deve ser aceita")
}

func TestValidateEntrada_QuantidadeZero_Rejeitada(t *testing.T) {
	err := inventory.ValidateEntrada(decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada com quantidade zero deve ser rejeitada")
}

func TestValidateEntrada_QuantidadeNegativa_Rejeitada(t *testing.T) {
	err := inventory.ValidateEntrada(decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada com quantidade negativa deve ser rejeitada")
}

func TestValidateEntrada_QuantidadeFracionaria_Rejeitada(t *testing.T) {
	err := inventory.ValidateEntrada(decimal.NewFromFloat(2.5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade fracionária deve ser rejeitada")
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateSaida — a rejeição carrega o saldo disponível
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateSaida_SaldoSuficiente(t *testing.T) {
	err := inventory.ValidateSaida(decimal.NewFromInt(10), decimal.NewFromInt(15))
	assert.NoError(t, err, "saída dentro do saldo deve ser aceita")
}

func TestValidateSaida_SaldoExato(t *testing.T) {
	err := inventory.ValidateSaida(decimal.NewFromInt(15), decimal.NewFromInt(15))
	assert.NoError(t, err, "saída que zera o saldo deve ser aceita")
}

func TestValidateSaida_SaldoInsuficiente_CarregaDisponivel(t *testing.T) {
	err := inventory.ValidateSaida(decimal.NewFromInt(20), decimal.NewFromInt(15))
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient),
		"a rejeição deve ser tipada como InsufficientStockError")
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(15)),
		"o erro deve carregar o saldo disponível no instante da validação")
}

func TestValidateSaida_SaldoZero_Rejeitada(t *testing.T) {
	// Par (produto, armazém) nunca movimentado conta como saldo zero.
	err := inventory.ValidateSaida(decimal.NewFromInt(1), decimal.Zero)
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.True(t, insufficient.Available.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateAjuste — quantidade com sinal
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateAjuste_PositivoSempreAceito(t *testing.T) {
	err := inventory.ValidateAjuste(decimal.NewFromInt(100), decimal.Zero)
	assert.NoError(t, err, "ajuste positivo não depende do saldo atual")
}

func TestValidateAjuste_NegativoDentroDoSaldo(t *testing.T) {
	err := inventory.ValidateAjuste(decimal.NewFromInt(-5), decimal.NewFromInt(10))
	assert.NoError(t, err, "ajuste negativo dentro do saldo deve ser aceito")
}

func TestValidateAjuste_NegativoAbaixoDeZero_Rejeitado(t *testing.T) {
	err := inventory.ValidateAjuste(decimal.NewFromInt(-15), decimal.NewFromInt(10))
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient),
		"ajuste negativo que deixaria o saldo abaixo de zero passa pela checagem de saída")
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(10)))
}

func TestValidateAjuste_Zero_Rejeitado(t *testing.T) {
	err := inventory.ValidateAjuste(decimal.Zero, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ajuste zero não é movimentação")
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateTransferencia
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateTransferencia_ArmazensDistintos(t *testing.T) {
	err := inventory.ValidateTransferencia("wh-a", "wh-b", decimal.NewFromInt(5), decimal.NewFromInt(10))
	assert.NoError(t, err)
}

func TestValidateTransferencia_MesmoArmazem_Rejeitada(t *testing.T) {
	err := inventory.ValidateTransferencia("wh-a", "wh-a", decimal.NewFromInt(5), decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrInvalidTransfer,
		"transferência exige origem e destino distintos")
}

func TestValidateTransferencia_SaldoInsuficienteNaOrigem(t *testing.T) {
	err := inventory.ValidateTransferencia("wh-a", "wh-b", decimal.NewFromInt(20), decimal.NewFromInt(10))
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient),
		"o saldo checado é sempre o da origem")
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(10)))
}
