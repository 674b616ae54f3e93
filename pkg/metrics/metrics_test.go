package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve_CuentaPorRuta(t *testing.T) {
	m := New()
	m.Observe("GET", "/api/products", "200", time.Now())
	m.Observe("GET", "/api/products", "200", time.Now())
	m.Observe("POST", "/api/products", "400", time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues("GET", "/api/products", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues("POST", "/api/products", "400")))
}

func TestNew_RegistriesIndependientes(t *testing.T) {
	a, b := New(), New()
	a.Export("pdf", "ok")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.CatalogExports.WithLabelValues("pdf", "ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CatalogExports.WithLabelValues("pdf", "ok")))
}
