package finance_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfin "github.com/gestorpro/gestor-api/internal/application/finance"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

func buildReconciler(store *financeStore) (*appfin.StatusReconciler, *fakeFinanceNotifier) {
	notifier := &fakeFinanceNotifier{}
	rec := appfin.NewStatusReconciler(&fakeAccountRepo{store: store}, notifier, zerolog.Nop())
	return rec, notifier
}

func contaComVencimento(id string, vencimento time.Time, valorPago int64, status string) *entity.FinancialAccount {
	return &entity.FinancialAccount{
		ID:             id,
		Kind:           entity.AccountKindReceber,
		Origin:         entity.AccountOriginVenda,
		ValorTotal:     decimal.NewFromInt(1000),
		ValorPago:      decimal.NewFromInt(valorPago),
		DataEmissao:    vencimento.AddDate(0, -1, 0),
		DataVencimento: vencimento,
		Status:         status,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliação de status
// ──────────────────────────────────────────────────────────────────────────────

func TestReconciler_ContaVencidaViraAtrasado(t *testing.T) {
	store := newFinanceStore()
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	store.accounts["vencida"] = contaComVencimento("vencida", today.AddDate(0, 0, -3), 0, entity.AccountStatusPendente)
	store.accounts["no-prazo"] = contaComVencimento("no-prazo", today.AddDate(0, 0, 3), 0, entity.AccountStatusPendente)
	rec, notifier := buildReconciler(store)

	changed, err := rec.Run(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, 1, changed)
	assert.Equal(t, entity.AccountStatusAtrasado, store.accounts["vencida"].Status)
	assert.Equal(t, entity.AccountStatusPendente, store.accounts["no-prazo"].Status)
	require.Len(t, notifier.overdues, 1, "a conta que entrou em atraso deve ser notificada")
	assert.Equal(t, "vencida", notifier.overdues[0].ID)
}

func TestReconciler_ParcialmentePagaVencida_Atrasado(t *testing.T) {
	store := newFinanceStore()
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	store.accounts["parcial"] = contaComVencimento("parcial", today.AddDate(0, 0, -1), 400, entity.AccountStatusParcialmentePago)
	rec, _ := buildReconciler(store)

	changed, err := rec.Run(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, 1, changed)
	assert.Equal(t, entity.AccountStatusAtrasado, store.accounts["parcial"].Status)
	assert.True(t, store.accounts["parcial"].ValorPago.Equal(decimal.NewFromInt(400)),
		"o reconciliador nunca toca em valor_pago")
}

func TestReconciler_TerminaisNaoSaoTocados(t *testing.T) {
	store := newFinanceStore()
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	store.accounts["paga"] = contaComVencimento("paga", today.AddDate(0, 0, -5), 1000, entity.AccountStatusPago)
	store.accounts["cancelada"] = contaComVencimento("cancelada", today.AddDate(0, 0, -5), 0, entity.AccountStatusCancelado)
	rec, _ := buildReconciler(store)

	changed, err := rec.Run(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, 0, changed)
	assert.Equal(t, entity.AccountStatusPago, store.accounts["paga"].Status)
	assert.Equal(t, entity.AccountStatusCancelado, store.accounts["cancelada"].Status)
}

func TestReconciler_Idempotente(t *testing.T) {
	store := newFinanceStore()
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	store.accounts["vencida"] = contaComVencimento("vencida", today.AddDate(0, 0, -3), 0, entity.AccountStatusPendente)
	rec, notifier := buildReconciler(store)

	first, err := rec.Run(context.Background(), today)
	require.NoError(t, err)
	second, err := rec.Run(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, 1, first, "a primeira passada transiciona a conta")
	assert.Equal(t, 0, second, "a segunda passada sem lançamentos no meio não muda nada")
	assert.Len(t, notifier.overdues, 1, "a notificação de atraso é emitida uma única vez")
}

func TestReconciler_AtrasadaQuitada_ViraPago(t *testing.T) {
	// Conta marcada atrasada e depois quitada pelo ledger: a reconciliação
	// seguinte já a vê em pago (terminal) e não mexe mais nela.
	store := newFinanceStore()
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	store.accounts["atrasada"] = contaComVencimento("atrasada", today.AddDate(0, 0, -3), 1000, entity.AccountStatusAtrasado)
	rec, _ := buildReconciler(store)

	changed, err := rec.Run(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, 1, changed)
	assert.Equal(t, entity.AccountStatusPago, store.accounts["atrasada"].Status)
}
