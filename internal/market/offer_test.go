package market

import (
	"testing"

	"github.com/ZilDuck/nft-marketplace/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferForSale_RequiresActiveCollection(t *testing.T) {
	h := newHarness(t)
	h.single.Mint(0, alice)

	err := h.market.OfferForSale(alice, singleContract, 0, amt(5), "")
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestOfferForSale_RequiresOwnership(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	err := h.market.OfferForSale(bob, singleContract, 0, amt(5), "")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestOfferForSale_RejectsUnknownToken(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)

	err := h.market.OfferForSale(alice, singleContract, 7, amt(5), "")
	assert.ErrorIs(t, err, registry.ErrUnknownToken)
}

func TestOfferForSale_RequiresApproval(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	err := h.market.OfferForSale(alice, singleContract, 0, amt(5), "")
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestOfferForSale_PutsOffer(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.listToken(t, alice, 0, 500)

	offer, err := h.market.GetOffer(singleContract, 0)
	require.NoError(t, err)
	assert.True(t, offer.ForSale)
	assert.Equal(t, alice, offer.Seller)
	assert.Equal(t, "500", offer.MinValue)
	assert.Equal(t, "", offer.OnlySellTo)
}

func TestOfferForSale_QuantityModel(t *testing.T) {
	h := newHarness(t)
	h.enableMulti(t, 5)
	h.multi.Mint(1, alice, 3)
	h.multi.Approve(alice, operator, true)

	require.NoError(t, h.market.OfferForSale(alice, multiContract, 1, amt(100), ""))

	// A holder with no quantity cannot list.
	h.multi.Approve(bob, operator, true)
	assert.ErrorIs(t, h.market.OfferForSale(bob, multiContract, 1, amt(100), ""), ErrNotOwner)
}

func TestOfferForSale_RejectsNegativeMinValue(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)
	h.single.Approve(alice, operator, true)

	assert.ErrorIs(t, h.market.OfferForSale(alice, singleContract, 0, amt(-1), ""), ErrInvalidAmount)
}

func TestRevokeOffer_RequiresActiveCollection(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.market.RevokeOffer(alice, singleContract, 0), ErrNotActive)
}

func TestRevokeOffer_RequiresOwnership(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.listToken(t, alice, 0, 500)

	assert.ErrorIs(t, h.market.RevokeOffer(bob, singleContract, 0), ErrNotOwner)
}

func TestRevokeOffer_ClearsOfferKeepsSeller(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.listToken(t, alice, 0, 500)

	require.NoError(t, h.market.RevokeOffer(alice, singleContract, 0))

	offer, err := h.market.GetOffer(singleContract, 0)
	require.NoError(t, err)
	assert.False(t, offer.ForSale)
	assert.Equal(t, alice, offer.Seller)
	assert.Equal(t, "0", offer.MinValue)
	assert.Equal(t, "", offer.OnlySellTo)
}

func TestGetOffer_ZeroValueWhenNeverSet(t *testing.T) {
	h := newHarness(t)

	offer, err := h.market.GetOffer(singleContract, 42)
	require.NoError(t, err)
	assert.False(t, offer.ForSale)
	assert.Equal(t, uint64(42), offer.TokenId)
	assert.Equal(t, "0", offer.MinValue)
}
