package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/golden-store/internal/application/bootstrap"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/infrastructure/memory"
)

func TestSeed_Idempotente(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	admins := memory.NewAdminRepository(db)
	products := memory.NewProductRepository(db)
	stores := memory.NewStoreRepository(db)
	seeder := bootstrap.NewSeeder(admins, products, memory.NewTxRunner(db), nil)

	res, err := seeder.Seed(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, 6, res.ProductsCreated)
	assert.Equal(t, 3, res.NavigationItems)

	// el admin cambia la configuración y luego se vuelve a sembrar con otra contraseña
	s, err := stores.GetSettings(ctx)
	require.NoError(t, err)
	s.StoreName = "Cambiada"
	require.NoError(t, stores.UpdateSettings(ctx, s))

	res, err = seeder.Seed(ctx, "admin", "nueva-clave")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ProductsCreated)
	assert.Equal(t, 6, res.ProductsUpdated)

	list, err := products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 6)

	n, err := admins.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	admin, err := admins.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("nueva-clave")))

	s, err = stores.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultStoreSettings().StoreName, s.StoreName)
	nav, err := stores.ListNavigation(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, nav, 3)
}

func TestSampleProducts_SlugsUnicos(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range bootstrap.SampleProducts() {
		assert.False(t, seen[p.Slug], p.Slug)
		seen[p.Slug] = true
		assert.Positive(t, p.Price)
		assert.NotEmpty(t, p.Tags)
	}
	assert.Len(t, seen, 6)
}
