package repository

import (
	"testing"
	"time"

	"github.com/correagss/personal-control-finance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(":memory:")
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { repo.Close() })
	return repo
}

func createTestUser(t *testing.T, repo *Repository, email string) *models.Usuario {
	t.Helper()
	user := &models.Usuario{Email: email, HashedPassword: "digest"}
	require.NoError(t, repo.CreateUser(user))
	return user
}

func TestCreateUserAssignsID(t *testing.T) {
	repo := newTestRepo(t)

	user := createTestUser(t, repo, "alice@example.com")
	assert.NotZero(t, user.ID)
}

func TestFindUserByEmail(t *testing.T) {
	repo := newTestRepo(t)
	created := createTestUser(t, repo, "alice@example.com")

	found, err := repo.FindUserByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "digest", found.HashedPassword)

	_, err = repo.FindUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateEmailRejectedBySchema(t *testing.T) {
	repo := newTestRepo(t)
	createTestUser(t, repo, "alice@example.com")

	err := repo.CreateUser(&models.Usuario{Email: "alice@example.com", HashedPassword: "other"})
	assert.Error(t, err)
}

func TestTransacaoLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	user := createTestUser(t, repo, "alice@example.com")

	tx := &models.Transacao{
		Descricao: "Salario",
		Valor:     1000,
		Tipo:      models.TipoEntrada,
		Data:      time.Now().UTC(),
		OwnerID:   user.ID,
	}
	require.NoError(t, repo.CreateTransacao(tx))
	require.NotZero(t, tx.ID)

	found, err := repo.FindTransacao(tx.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salario", found.Descricao)
	assert.Equal(t, 1000.0, found.Valor)

	tx.Descricao = "Salario liquido"
	tx.Valor = 900
	require.NoError(t, repo.UpdateTransacao(tx))

	updated, err := repo.FindTransacao(tx.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salario liquido", updated.Descricao)
	assert.Equal(t, 900.0, updated.Valor)
	assert.WithinDuration(t, found.Data, updated.Data, time.Second, "update must not touch the timestamp")

	require.NoError(t, repo.DeleteTransacao(tx.ID, user.ID))
	_, err = repo.FindTransacao(tx.ID, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwnerScoping(t *testing.T) {
	repo := newTestRepo(t)
	alice := createTestUser(t, repo, "alice@example.com")
	bob := createTestUser(t, repo, "bob@example.com")

	tx := &models.Transacao{Descricao: "Aluguel", Valor: 300, Tipo: models.TipoSaida, Data: time.Now().UTC(), OwnerID: alice.ID}
	require.NoError(t, repo.CreateTransacao(tx))

	_, err := repo.FindTransacao(tx.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	foreign := &models.Transacao{ID: tx.ID, Descricao: "x", Valor: 1, Tipo: models.TipoSaida, OwnerID: bob.ID}
	assert.ErrorIs(t, repo.UpdateTransacao(foreign), ErrNotFound)
	assert.ErrorIs(t, repo.DeleteTransacao(tx.ID, bob.ID), ErrNotFound)

	// Alice still sees her transaction untouched
	kept, err := repo.FindTransacao(tx.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aluguel", kept.Descricao)

	list, err := repo.ListTransacoes(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListTransacoesInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	user := createTestUser(t, repo, "alice@example.com")

	for _, desc := range []string{"a", "b", "c"} {
		require.NoError(t, repo.CreateTransacao(&models.Transacao{
			Descricao: desc, Valor: 1, Tipo: models.TipoEntrada, Data: time.Now().UTC(), OwnerID: user.ID,
		}))
	}

	list, err := repo.ListTransacoes(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Descricao)
	assert.Equal(t, "c", list[2].Descricao)
}

func TestSumByTipo(t *testing.T) {
	repo := newTestRepo(t)
	user := createTestUser(t, repo, "alice@example.com")
	other := createTestUser(t, repo, "bob@example.com")

	now := time.Now().UTC()
	for _, tx := range []*models.Transacao{
		{Descricao: "Salario", Valor: 1000, Tipo: models.TipoEntrada, Data: now, OwnerID: user.ID},
		{Descricao: "Aluguel", Valor: 300, Tipo: models.TipoSaida, Data: now, OwnerID: user.ID},
		{Descricao: "Mercado", Valor: 150.50, Tipo: models.TipoSaida, Data: now, OwnerID: user.ID},
		{Descricao: "Bonus", Valor: 9999, Tipo: models.TipoEntrada, Data: now, OwnerID: other.ID},
	} {
		require.NoError(t, repo.CreateTransacao(tx))
	}

	entradas, saidas, err := repo.SumByTipo(user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1000, entradas, 1e-9)
	assert.InDelta(t, 450.50, saidas, 1e-9)
}

func TestRebind(t *testing.T) {
	sqlite := &Repository{postgres: false}
	assert.Equal(t, "SELECT ?, ?", sqlite.rebind("SELECT ?, ?"))

	pg := &Repository{postgres: true}
	assert.Equal(t, "SELECT $1, $2", pg.rebind("SELECT ?, ?"))
}
