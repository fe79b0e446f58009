package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"controle-financeiro-go/internal/models"
)

type fakeStore struct {
	contas  []models.Conta
	listErr error
	updErr  error
	updates []models.Conta
}

func (f *fakeStore) Listar(_ context.Context) ([]models.Conta, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Conta, len(f.contas))
	copy(out, f.contas)
	return out, nil
}

func (f *fakeStore) Atualizar(_ context.Context, conta models.Conta) error {
	if f.updErr != nil {
		return f.updErr
	}
	f.updates = append(f.updates, conta)
	for i := range f.contas {
		if f.contas[i].ID == conta.ID {
			f.contas[i] = conta
		}
	}
	return nil
}

// fixedReconciler pins the clock to 15/05/2024.
func fixedReconciler(store Store) *Reconciler {
	r := New(store)
	r.now = func() time.Time {
		return time.Date(2024, 5, 15, 10, 30, 0, 0, time.Local)
	}
	return r
}

func TestListagemMarcaContasVencidas(t *testing.T) {
	store := &fakeStore{contas: []models.Conta{
		{ID: 1, Nome: "Luz", Valor: "100.00", Vencimento: "01/01/2020", Status: models.StatusPendente},
		{ID: 2, Nome: "Água", Valor: "50.00", Vencimento: "01/01/2099", Status: models.StatusPendente},
	}}

	resumo, err := fixedReconciler(store).Listagem(context.Background())
	require.NoError(t, err)

	require.Len(t, store.updates, 1)
	update := store.updates[0]
	assert.Equal(t, 1, update.ID)
	assert.Equal(t, "Luz", update.Nome)
	assert.Equal(t, "100.00", update.Valor)
	assert.Equal(t, "01/01/2020", update.Vencimento)
	assert.Equal(t, models.StatusVencida, update.Status)

	require.Len(t, resumo.Contas, 2)
	assert.Equal(t, models.StatusVencida, resumo.Contas[0].Status)
	assert.Equal(t, models.StatusPendente, resumo.Contas[1].Status)
}

func TestListagemVencendoHojeNaoVence(t *testing.T) {
	store := &fakeStore{contas: []models.Conta{
		{ID: 1, Nome: "Luz", Valor: "100.00", Vencimento: "15/05/2024", Status: models.StatusPendente},
	}}

	resumo, err := fixedReconciler(store).Listagem(context.Background())
	require.NoError(t, err)

	assert.Empty(t, store.updates)
	assert.Equal(t, models.StatusPendente, resumo.Contas[0].Status)
}

func TestListagemNaoReclassificaPagas(t *testing.T) {
	store := &fakeStore{contas: []models.Conta{
		{ID: 1, Nome: "Luz", Valor: "100.00", Vencimento: "01/01/2020", Status: models.StatusPaga},
	}}

	resumo, err := fixedReconciler(store).Listagem(context.Background())
	require.NoError(t, err)

	assert.Empty(t, store.updates)
	assert.Equal(t, models.StatusPaga, resumo.Contas[0].Status)
	assert.Equal(t, 100.0, resumo.TotalPago)
}

func TestListagemIdempotente(t *testing.T) {
	store := &fakeStore{contas: []models.Conta{
		{ID: 1, Nome: "Luz", Valor: "100.00", Vencimento: "01/01/2020", Status: models.StatusPendente},
		{ID: 2, Nome: "Água", Valor: "50.00", Vencimento: "01/01/2020", Status: models.StatusVencida},
	}}
	r := fixedReconciler(store)

	_, err := r.Listagem(context.Background())
	require.NoError(t, err)
	require.Len(t, store.updates, 1)

	_, err = r.Listagem(context.Background())
	require.NoError(t, err)
	assert.Len(t, store.updates, 1)
}

func TestListagemTotais(t *testing.T) {
	store := &fakeStore{contas: []models.Conta{
		{ID: 1, Nome: "Luz", Valor: "100.00", Vencimento: "01/01/2099", Status: models.StatusPendente},
		{ID: 2, Nome: "Água", Valor: "50.00", Vencimento: "01/01/2099", Status: models.StatusPaga},
	}}

	resumo, err := fixedReconciler(store).Listagem(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 150.0, resumo.TotalValor)
	assert.Equal(t, 50.0, resumo.TotalPago)
	assert.Equal(t, 100.0, resumo.SaldoDevedor)
}

func TestListagemVencimentoInvalidoFalha(t *testing.T) {
	store := &fakeStore{contas: []models.Conta{
		{ID: 1, Nome: "Luz", Valor: "100.00", Vencimento: "ontem", Status: models.StatusPendente},
	}}

	_, err := fixedReconciler(store).Listagem(context.Background())
	require.Error(t, err)
	assert.Empty(t, store.updates)
}

func TestListagemValorInvalidoFalha(t *testing.T) {
	store := &fakeStore{contas: []models.Conta{
		{ID: 1, Nome: "Luz", Valor: "cem", Vencimento: "01/01/2099", Status: models.StatusPendente},
	}}

	_, err := fixedReconciler(store).Listagem(context.Background())
	require.Error(t, err)
}

func TestListagemErroDeListaPropaga(t *testing.T) {
	listErr := errors.New("store offline")
	store := &fakeStore{listErr: listErr}

	_, err := fixedReconciler(store).Listagem(context.Background())
	require.ErrorIs(t, err, listErr)
}

func TestListagemToleraErroDeAtualizacao(t *testing.T) {
	store := &fakeStore{
		contas: []models.Conta{
			{ID: 1, Nome: "Luz", Valor: "100.00", Vencimento: "01/01/2020", Status: models.StatusPendente},
		},
		updErr: errors.New("store indisponível"),
	}

	resumo, err := fixedReconciler(store).Listagem(context.Background())
	require.NoError(t, err)

	// The write failed, so this request shows the stale status.
	assert.Equal(t, models.StatusPendente, resumo.Contas[0].Status)
	assert.Equal(t, 100.0, resumo.TotalValor)
}
