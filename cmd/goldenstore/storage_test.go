package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/golden-store/pkg/config"
	"github.com/jhoicas/golden-store/pkg/logger"
)

func TestOpenStorage_Memory(t *testing.T) {
	cfg := &config.Config{DB: config.DBConfig{Driver: "memory"}}
	st, err := openStorage(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer st.close()

	assert.Nil(t, st.pool)
	assert.NoError(t, st.Ping(context.Background()))

	n, err := st.admins.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpenStorage_DriverDesconocido(t *testing.T) {
	_, err := openStorage(context.Background(), &config.Config{DB: config.DBConfig{Driver: "mongo"}}, logger.Nop())
	assert.Error(t, err)
}

func TestRootCmd_Subcomandos(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])
}

func TestRootCmd_DescribeLaTienda(t *testing.T) {
	assert.Contains(t, rootCmd.Short, "stickers")
	assert.NotContains(t, rootCmd.Short, "joyería")
}
