package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_Defaults(t *testing.T) {
	cfg := Get()

	assert.Equal(t, "", cfg.LogPath)
	assert.Equal(t, "marketplace", cfg.Operator)
	assert.Equal(t, "8080", cfg.ApiPort)
	assert.Equal(t, "0xadmin", cfg.Demo.Admin)
	assert.Equal(t, 10, cfg.Demo.TokenSupply)
	assert.Empty(t, cfg.Demo.SingleContracts)
}

func TestGet_ReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_PATH", "/tmp/market.log")
	t.Setenv("DEMO_SINGLE_CONTRACTS", "0xaaaa721,0xcccc721")
	t.Setenv("DEMO_QUANTITY_CONTRACTS", "0xbbbb1155")
	t.Setenv("DEMO_ADMIN", "0xdemo")
	t.Setenv("DEMO_TOKEN_SUPPLY", "25")

	cfg := Get()

	assert.Equal(t, "/tmp/market.log", cfg.LogPath)
	assert.Equal(t, []string{"0xaaaa721", "0xcccc721"}, cfg.Demo.SingleContracts)
	assert.Equal(t, []string{"0xbbbb1155"}, cfg.Demo.QuantityContracts)
	assert.Equal(t, "0xdemo", cfg.Demo.Admin)
	assert.Equal(t, 25, cfg.Demo.TokenSupply)
}
