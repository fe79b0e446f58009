// Package reconciler keeps displayed conta statuses consistent with the
// current date: anything past its vencimento that was not paid becomes
// vencida before the listing is rendered.
package reconciler

import (
	"context"
	"log"
	"time"

	"controle-financeiro-go/internal/models"
)

// Store is the slice of the gateway the reconciler needs.
type Store interface {
	Listar(ctx context.Context) ([]models.Conta, error)
	Atualizar(ctx context.Context, conta models.Conta) error
}

type Reconciler struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Reconciler {
	return &Reconciler{store: store, now: time.Now}
}

// Resumo is a reconciled listing plus its aggregate totals.
type Resumo struct {
	Contas       []models.Conta
	TotalValor   float64
	TotalPago    float64
	SaldoDevedor float64
}

// Listagem reconciles overdue statuses against today's date, re-fetches the
// collection and computes the totals over the fresh listing. A conta with an
// unparsable vencimento or valor fails the whole listing.
func (r *Reconciler) Listagem(ctx context.Context) (*Resumo, error) {
	if err := r.reconcile(ctx); err != nil {
		return nil, err
	}

	contas, err := r.store.Listar(ctx)
	if err != nil {
		return nil, err
	}

	resumo := &Resumo{Contas: contas}
	for _, conta := range contas {
		valor, err := conta.ValorFloat()
		if err != nil {
			return nil, err
		}
		resumo.TotalValor += valor
		if conta.Status == models.StatusPaga {
			resumo.TotalPago += valor
		}
	}
	resumo.SaldoDevedor = resumo.TotalValor - resumo.TotalPago
	return resumo, nil
}

func (r *Reconciler) reconcile(ctx context.Context) error {
	contas, err := r.store.Listar(ctx)
	if err != nil {
		return err
	}

	today := r.today()
	for _, conta := range contas {
		vencimento, err := conta.VencimentoTime()
		if err != nil {
			return err
		}
		// Paid contas are never reclassified; contas already vencida need no
		// second write.
		if conta.Status == models.StatusPaga || conta.Status == models.StatusVencida {
			continue
		}
		if !vencimento.Before(today) {
			continue
		}
		conta.Status = models.StatusVencida
		if err := r.store.Atualizar(ctx, conta); err != nil {
			// Not retried; this conta shows its stale status for one request.
			log.Printf("atualizar conta %d para vencida: %v", conta.ID, err)
		}
	}
	return nil
}

// today is the frontend-local calendar date at midnight, in the same zone
// time.Parse puts vencimento dates in.
func (r *Reconciler) today() time.Time {
	now := r.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
