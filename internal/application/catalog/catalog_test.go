package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/golden-store/internal/application/dto"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 990", FormatRupiah(990))
	assert.Equal(t, "Rp 1.250.000", FormatRupiah(1250000))
	assert.Equal(t, "Rp 37.500", FormatRupiah(37500))
	assert.Equal(t, "1250000.00 IDR", MerchantPrice(1250000))
}

type stubProducts struct {
	list []dto.ProductResponse
	err  error
}

func (s stubProducts) List(context.Context) ([]dto.ProductResponse, error) { return s.list, s.err }

type stubSettings struct{ s *dto.StoreSettingsResponse }

func (s stubSettings) Get(context.Context) (*dto.StoreSettingsResponse, error) { return s.s, nil }

type recorder struct{ snap Snapshot }

func (r *recorder) RenderCatalog(_ context.Context, snap Snapshot) ([]byte, error) {
	r.snap = snap
	return []byte("%PDF"), nil
}

func (r *recorder) BuildFeed(_ context.Context, snap Snapshot) ([]byte, string, error) {
	r.snap = snap
	return []byte("<rss/>"), `"abc"`, nil
}

func TestExportUseCase_Snapshot(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)
	store := &dto.StoreSettingsResponse{StoreName: "Golden Store", UpdatedAt: &t1}
	products := []dto.ProductResponse{{Name: "A", UpdatedAt: t2}, {Name: "B", UpdatedAt: t1}}
	rec := &recorder{}
	uc := NewExportUseCase(stubProducts{list: products}, stubSettings{store}, rec, rec, "https://golden.example")
	uc.now = func() time.Time { return t2 }

	doc, name, err := uc.CatalogPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), doc)
	assert.Equal(t, "katalog-2025-01-03.pdf", name)
	assert.Equal(t, t2, rec.snap.LastModified)
	assert.Equal(t, "https://golden.example", rec.snap.PublicURL)
	assert.Len(t, rec.snap.Products, 2)

	feed, err := uc.ProductFeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, feed.ETag)
}

func TestExportUseCase_PropagaErrores(t *testing.T) {
	boom := errors.New("db caída")
	rec := &recorder{}
	uc := NewExportUseCase(stubProducts{err: boom}, stubSettings{&dto.StoreSettingsResponse{}}, rec, rec, "")

	_, err := uc.ProductFeed(context.Background())
	assert.ErrorIs(t, err, boom)
}
