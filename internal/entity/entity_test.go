package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugs(t *testing.T) {
	assert.Equal(t, "collection-0xabc", Collection{Contract: "0xABC"}.Slug())
	assert.Equal(t, "token-7-0xabc", Offer{Contract: "0xABC", TokenId: 7}.Slug())
	assert.Equal(t, "token-7-0xabc", Bid{Contract: "0xABC", TokenId: 7}.Slug())
	assert.Equal(t, "balance-0xabc", Balance{Address: "0xABC"}.Slug())

	// Offer and bid for the same token share a slug so the two books line up.
	assert.Equal(t, Offer{Contract: "0xabc", TokenId: 7}.Slug(), Bid{Contract: "0xabc", TokenId: 7}.Slug())
}

func TestNewSale(t *testing.T) {
	sale := NewSale("0xabc", 7, "0xbuyer", "0xseller", "1000", "100", "900", SaleViaOffer)

	assert.NotEmpty(t, sale.Id)
	assert.Equal(t, "0xabc", sale.Contract)
	assert.Equal(t, uint64(7), sale.TokenId)
	assert.Equal(t, SaleViaOffer, sale.Kind)
	assert.Contains(t, sale.Slug(), "sale-")

	// Each sale gets its own identity.
	other := NewSale("0xabc", 7, "0xbuyer", "0xseller", "1000", "100", "900", SaleViaOffer)
	assert.NotEqual(t, sale.Id, other.Id)
}
