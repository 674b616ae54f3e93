package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/golden-store/internal/application/dto"
	"github.com/jhoicas/golden-store/internal/application/store"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
	"github.com/jhoicas/golden-store/internal/infrastructure/memory"
)

const storeID = "store-1"

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func seedNav(t *testing.T, repo repository.StoreRepository, ids ...string) {
	t.Helper()
	for i, id := range ids {
		require.NoError(t, repo.CreateNavigation(context.Background(), &entity.NavigationItem{
			ID: id, StoreID: storeID, Label: "L" + id, URL: "#" + id, Order: i, CreatedAt: now.Add(-time.Hour),
		}))
	}
}

func reconcile(t *testing.T, db *memory.DB, items []dto.NavigationInput) []*entity.NavigationItem {
	t.Helper()
	var out []*entity.NavigationItem
	err := memory.NewTxRunner(db).RunStore(context.Background(), func(r repository.StoreRepository) error {
		var err error
		out, err = store.ReconcileNavigation(context.Background(), r, storeID, items, now)
		return err
	})
	require.NoError(t, err)
	return out
}

func TestReconcileNavigation_ActualizaCreaYBorra(t *testing.T) {
	db := memory.New()
	seedNav(t, memory.NewStoreRepository(db), "1", "2", "3")

	out := reconcile(t, db, []dto.NavigationInput{
		{ID: "1", Label: "A", URL: "#a"},
		{Label: "B", URL: "https://b.example", IsExternal: true},
		{ID: "3", Label: "C", URL: "#c"},
	})

	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "A", out[0].Label)
	assert.Equal(t, "B", out[1].Label)
	assert.True(t, out[1].IsExternal)
	assert.NotContains(t, []string{"1", "2", "3"}, out[1].ID, "el ítem sin id se crea")
	assert.Equal(t, "3", out[2].ID)
	for i, item := range out {
		assert.Equal(t, i, item.Order)
	}

	n, err := memory.NewStoreRepository(db).CountNavigation(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "el 2 debe haberse borrado")
}

func TestReconcileNavigation_IDDesconocidoSeCrea(t *testing.T) {
	db := memory.New()
	seedNav(t, memory.NewStoreRepository(db), "1")

	out := reconcile(t, db, []dto.NavigationInput{{ID: "default-0", Label: "Home", URL: "#home"}})

	require.Len(t, out, 1)
	assert.NotEqual(t, "default-0", out[0].ID)
	assert.NotEqual(t, "1", out[0].ID)
	assert.Equal(t, "Home", out[0].Label)
	assert.Equal(t, now, out[0].CreatedAt)
}

func TestReconcileNavigation_IDRepetidoNoRompeElOrden(t *testing.T) {
	db := memory.New()
	seedNav(t, memory.NewStoreRepository(db), "1")

	out := reconcile(t, db, []dto.NavigationInput{
		{ID: "1", Label: "A", URL: "#a"},
		{ID: "1", Label: "A2", URL: "#a2"},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "A", out[0].Label)
	assert.Equal(t, "A2", out[1].Label)
	assert.Equal(t, 1, out[1].Order)
}

func TestReconcileNavigation_IDNoCanonicoConservaLaFila(t *testing.T) {
	const id = "8c1258c6-c89b-4d6e-a3f1-5b2e7d9c0a14"
	forms := map[string]string{
		"mayúsculas":  "8C1258C6-C89B-4D6E-A3F1-5B2E7D9C0A14",
		"llaves":      "{8c1258c6-c89b-4d6e-a3f1-5b2e7d9c0a14}",
		"urn":         "urn:uuid:8c1258c6-c89b-4d6e-a3f1-5b2e7d9c0a14",
		"sin guiones": "8c1258c6c89b4d6ea3f15b2e7d9c0a14",
	}
	for name, form := range forms {
		t.Run(name, func(t *testing.T) {
			db := memory.New()
			seedNav(t, memory.NewStoreRepository(db), id)

			out := reconcile(t, db, []dto.NavigationInput{{ID: form, Label: "Nuevo", URL: "#nuevo"}})

			require.Len(t, out, 1, "la fila actualizada no debe borrarse ni duplicarse")
			assert.Equal(t, id, out[0].ID)
			assert.Equal(t, "Nuevo", out[0].Label)
			assert.Equal(t, now.Add(-time.Hour), out[0].CreatedAt, "se actualiza en sitio")
		})
	}
}

func TestReconcileNavigation_MismoIDEnDistintaFormaNoSeActualizaDosVeces(t *testing.T) {
	const id = "8c1258c6-c89b-4d6e-a3f1-5b2e7d9c0a14"
	db := memory.New()
	seedNav(t, memory.NewStoreRepository(db), id)

	out := reconcile(t, db, []dto.NavigationInput{
		{ID: id, Label: "A", URL: "#a"},
		{ID: "8C1258C6-C89B-4D6E-A3F1-5B2E7D9C0A14", Label: "B", URL: "#b"},
	})

	require.Len(t, out, 2)
	assert.Equal(t, id, out[0].ID)
	assert.Equal(t, "A", out[0].Label)
	assert.NotEqual(t, id, out[1].ID, "la segunda aparición se crea")
	assert.Equal(t, "B", out[1].Label)
	assert.Equal(t, 1, out[1].Order)
}

func TestCanonicalID(t *testing.T) {
	assert.Equal(t, "8c1258c6-c89b-4d6e-a3f1-5b2e7d9c0a14", store.CanonicalID("{8C1258C6-C89B-4D6E-A3F1-5B2E7D9C0A14}"))
	assert.Equal(t, "default-0", store.CanonicalID("default-0"))
	assert.Equal(t, "", store.CanonicalID(""))
}

func TestReconcileNavigation_ListaVaciaBorraTodo(t *testing.T) {
	db := memory.New()
	seedNav(t, memory.NewStoreRepository(db), "1", "2")

	out := reconcile(t, db, []dto.NavigationInput{})
	assert.Empty(t, out)
}

func TestSeedDefaultNavigation(t *testing.T) {
	db := memory.New()
	repo := memory.NewStoreRepository(db)
	require.NoError(t, store.SeedDefaultNavigation(context.Background(), repo, storeID, now))

	list, err := repo.ListNavigation(context.Background(), storeID)
	require.NoError(t, err)
	require.Len(t, list, len(entity.DefaultNavigation()))
	assert.Equal(t, "Home", list[0].Label)
	assert.True(t, list[2].IsExternal)
}
