package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
)

func TestProductRepo_SlugUnicoYOrden(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(New())
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "1", Slug: "a", CreatedAt: at}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "2", Slug: "b", CreatedAt: at}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "3", Slug: "c", CreatedAt: at.Add(-time.Hour)}))

	err := repo.Create(ctx, &entity.Product{ID: "4", Slug: "a"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"2", "1", "3"}, []string{list[0].ID, list[1].ID, list[2].ID})

	err = repo.Update(ctx, &entity.Product{ID: "3", Slug: "b"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Delete(ctx, "nope"), domain.ErrNotFound)
}

func TestProductRepo_DevuelveCopias(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(New())
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "1", Slug: "a", Tags: []string{"gold"}}))

	p, err := repo.GetBySlug(ctx, "a")
	require.NoError(t, err)
	p.Tags[0] = "mutado"

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"gold"}, again.Tags)
}

func TestAdminRepo_UsernameUnico(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(New())
	require.NoError(t, repo.Create(ctx, &entity.Admin{ID: "1", Username: "admin"}))
	require.NoError(t, repo.Create(ctx, &entity.Admin{ID: "2", Username: "otro"}))

	assert.ErrorIs(t, repo.Create(ctx, &entity.Admin{ID: "3", Username: "admin"}), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Admin{ID: "2", Username: "admin"}), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Admin{ID: "9", Username: "x"}), domain.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	missing, err := repo.GetByUsername(ctx, "nadie")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTxRunner_RollbackSiFnFalla(t *testing.T) {
	ctx := context.Background()
	db := New()
	tx := NewTxRunner(db)
	repo := NewStoreRepository(db)

	boom := errors.New("boom")
	err := tx.RunStore(ctx, func(r repository.StoreRepository) error {
		require.NoError(t, r.CreateSettings(ctx, &entity.StoreSettings{ID: "s1", Key: entity.StoreSettingsKey}))
		require.NoError(t, r.CreateNavigation(ctx, &entity.NavigationItem{ID: "n1", StoreID: "s1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	s, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, s, "la transacción fallida no debe dejar rastro")

	err = tx.RunStore(ctx, func(r repository.StoreRepository) error {
		return r.CreateSettings(ctx, &entity.StoreSettings{ID: "s1", Key: entity.StoreSettingsKey})
	})
	require.NoError(t, err)
	s, err = repo.GetSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "s1", s.ID)
}

func TestStoreRepo_UpdateNavigationAcotadoPorTienda(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRepository(New())
	require.NoError(t, repo.CreateNavigation(ctx, &entity.NavigationItem{ID: "n1", StoreID: "s1", Label: "A"}))

	ok, err := repo.UpdateNavigation(ctx, &entity.NavigationItem{ID: "n1", StoreID: "otra", Label: "B"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.UpdateNavigation(ctx, &entity.NavigationItem{ID: "desconocido", StoreID: "s1"})
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := repo.DeleteNavigationExcept(ctx, "s1", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestStoreRepo_NavegacionIDCanonico(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRepository(New())
	const id = "6f1c2b9e-8a4d-4c3e-9b7a-2d5e8f0a1b3c"
	require.NoError(t, repo.CreateNavigation(ctx, &entity.NavigationItem{ID: id, StoreID: "s1", Label: "A"}))

	ok, err := repo.UpdateNavigation(ctx, &entity.NavigationItem{ID: "{6F1C2B9E-8A4D-4C3E-9B7A-2D5E8F0A1B3C}", StoreID: "s1", Label: "B"})
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := repo.DeleteNavigationExcept(ctx, "s1", []string{"urn:uuid:6F1C2B9E8A4D4C3E9B7A2D5E8F0A1B3C"})
	require.NoError(t, err)
	assert.Zero(t, n)

	list, err := repo.ListNavigation(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "B", list[0].Label)
}
