package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/golden-store/internal/application/usecase"
	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/infrastructure/memory"
	"github.com/jhoicas/golden-store/pkg/slug"
)

func seedSlugs(t *testing.T, repo *memory.ProductRepo, slugs ...string) {
	t.Helper()
	for i, s := range slugs {
		require.NoError(t, repo.Create(context.Background(), &entity.Product{ID: "p" + string(rune('0'+i)), Slug: s}))
	}
}

func TestSlugAllocator_NoColisionaConExistentes(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		base     string
		want     string
	}{
		{"libre", nil, "cincin", "cincin"},
		{"ocupado", []string{"cincin"}, "cincin", "cincin-1"},
		{"hueco", []string{"cincin", "cincin-1", "cincin-3"}, "cincin", "cincin-2"},
		{"prefijo distinto", []string{"cincin-aurora"}, "cincin", "cincin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := memory.NewProductRepository(memory.New())
			seedSlugs(t, repo, tc.existing...)

			got, err := usecase.NewSlugAllocator(repo, 0).Allocate(context.Background(), tc.base, "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.NotContains(t, tc.existing, got)
		})
	}
}

func TestSlugAllocator_ExcluyeElPropioRegistro(t *testing.T) {
	repo := memory.NewProductRepository(memory.New())
	seedSlugs(t, repo, "cincin")

	got, err := usecase.NewSlugAllocator(repo, 0).Allocate(context.Background(), "cincin", "p0")
	require.NoError(t, err)
	assert.Equal(t, "cincin", got)
}

func TestSlugAllocator_BaseLargaNoEntraEnBucle(t *testing.T) {
	repo := memory.NewProductRepository(memory.New())
	long := strings.Repeat("a", slug.MaxLength)
	seedSlugs(t, repo, long)

	got, err := usecase.NewSlugAllocator(repo, 0).Allocate(context.Background(), long, "")
	require.NoError(t, err)
	assert.Len(t, got, slug.MaxLength)
	assert.True(t, strings.HasSuffix(got, "-1"))
}

func TestSlugAllocator_TopeDeIntentos(t *testing.T) {
	repo := memory.NewProductRepository(memory.New())
	seedSlugs(t, repo, "x", "x-1", "x-2")

	_, err := usecase.NewSlugAllocator(repo, 2).Allocate(context.Background(), "x", "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
