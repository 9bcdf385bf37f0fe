package finance

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
	domainfin "github.com/gestorpro/gestor-api/internal/domain/finance"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// StatusReconciler passagem periódica/sob demanda que recalcula o status
// derivado (atrasado, parcialmente_pago, pago) das contas não terminais a
// partir de valor_pago, valor_total e vencimento. Idempotente: duas execuções
// seguidas sem lançamentos no meio produzem o mesmo resultado. Nunca toca em
// valor_pago — esse campo é do ledger financeiro.
type StatusReconciler struct {
	accountRepo repository.FinancialAccountRepository
	notifier    Notifier
	log         zerolog.Logger
	batchSize   int
}

// NewStatusReconciler constrói o reconciliador.
func NewStatusReconciler(accountRepo repository.FinancialAccountRepository, notifier Notifier, log zerolog.Logger) *StatusReconciler {
	return &StatusReconciler{accountRepo: accountRepo, notifier: notifier, log: log, batchSize: 500}
}

// Run percorre as contas não terminais em lotes e atualiza o status das que
// divergem do valor recalculado. Devolve quantas contas foram alteradas.
func (r *StatusReconciler) Run(ctx context.Context, today time.Time) (int, error) {
	// Carrega todas as páginas antes de atualizar: mudar status durante a
	// paginação deslocaria o offset quando uma conta sai do conjunto.
	var pending []*entity.FinancialAccount
	for offset := 0; ; offset += r.batchSize {
		accounts, err := r.accountRepo.ListNonTerminal(r.batchSize, offset)
		if err != nil {
			return 0, err
		}
		pending = append(pending, accounts...)
		if len(accounts) < r.batchSize {
			break
		}
	}

	changed := 0
	for _, account := range pending {
		next := domainfin.ComputeStatus(account.Status, account.ValorPago, account.ValorTotal, account.DataVencimento, today)
		if next == account.Status {
			continue
		}
		if err := r.accountRepo.UpdateStatus(account.ID, next); err != nil {
			return changed, err
		}
		changed++
		if next == entity.AccountStatusAtrasado && r.notifier != nil {
			account.Status = next
			r.notifier.AccountOverdue(ctx, account)
		}
	}
	return changed, nil
}

// Start dispara o reconciliador em intervalos fixos até o contexto encerrar.
// Erros são logados e a próxima passada tenta de novo.
func (r *StatusReconciler) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			changed, err := r.Run(ctx, time.Now())
			if err != nil {
				r.log.Error().Err(err).Msg("reconciliação de status falhou")
				continue
			}
			if changed > 0 {
				r.log.Info().Int("contas", changed).Msg("status reconciliados")
			}
		}
	}
}
