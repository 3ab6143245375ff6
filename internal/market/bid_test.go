package market

import (
	"testing"

	"github.com/ZilDuck/nft-marketplace/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBid_RequiresActiveCollection(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.market.PlaceBid(bob, singleContract, 0, amt(100)), ErrNotActive)
}

func TestPlaceBid_RejectsTokenOwner(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	assert.ErrorIs(t, h.market.PlaceBid(alice, singleContract, 0, amt(100)), ErrSelfBid)
}

func TestPlaceBid_RejectsQuantityHolder(t *testing.T) {
	h := newHarness(t)
	h.enableMulti(t, 5)
	h.multi.Mint(1, alice, 2)

	assert.ErrorIs(t, h.market.PlaceBid(alice, multiContract, 1, amt(100)), ErrSelfBid)
}

func TestPlaceBid_RejectsUnknownToken(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)

	// Token 7 was never minted; the registry error surfaces instead of a bid
	// being escrowed against nothing.
	assert.ErrorIs(t, h.market.PlaceBid(bob, singleContract, 7, amt(100)), registry.ErrUnknownToken)

	bid, err := h.market.GetBid(singleContract, 7)
	require.NoError(t, err)
	assert.False(t, bid.HasBid)
}

func TestPlaceBid_CreatesBid(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	bid, err := h.market.GetBid(singleContract, 0)
	require.NoError(t, err)
	assert.False(t, bid.HasBid)

	require.NoError(t, h.market.PlaceBid(bob, singleContract, 0, amt(100)))

	bid, err = h.market.GetBid(singleContract, 0)
	require.NoError(t, err)
	assert.True(t, bid.HasBid)
	assert.Equal(t, bob, bid.Bidder)
	assert.Equal(t, "100", bid.Value)
}

func TestPlaceBid_RejectsZeroFirstBid(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	assert.ErrorIs(t, h.market.PlaceBid(bob, singleContract, 0, amt(0)), ErrBidTooLow)
}

func TestPlaceBid_RejectsNonImprovingBid(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	require.NoError(t, h.market.PlaceBid(bob, singleContract, 0, amt(100)))

	// Equal and lower bids are rejected outright, never absorbed.
	assert.ErrorIs(t, h.market.PlaceBid(carol, singleContract, 0, amt(100)), ErrBidTooLow)
	assert.ErrorIs(t, h.market.PlaceBid(carol, singleContract, 0, amt(99)), ErrBidTooLow)

	bid, err := h.market.GetBid(singleContract, 0)
	require.NoError(t, err)
	assert.Equal(t, bob, bid.Bidder)
	assert.True(t, h.balance(t, carol).Sign() == 0)
}

func TestPlaceBid_RefundsOutbidBidder(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	require.NoError(t, h.market.PlaceBid(bob, singleContract, 0, amt(500)))
	require.NoError(t, h.market.PlaceBid(carol, singleContract, 0, amt(550)))

	// Bob's exact escrow lands in Bob's ledger balance and nobody else's.
	assert.Equal(t, "500", h.balance(t, bob).String())
	assert.Equal(t, "0", h.balance(t, carol).String())
	assert.Equal(t, "0", h.balance(t, alice).String())

	bid, err := h.market.GetBid(singleContract, 0)
	require.NoError(t, err)
	assert.Equal(t, carol, bid.Bidder)
	assert.Equal(t, "550", bid.Value)
}

func TestWithdrawBid_RequiresActiveCollection(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.market.WithdrawBid(bob, singleContract, 0), ErrNotActive)
}

func TestWithdrawBid_RejectsTokenOwner(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	require.NoError(t, h.market.PlaceBid(bob, singleContract, 0, amt(100)))

	assert.ErrorIs(t, h.market.WithdrawBid(alice, singleContract, 0), ErrSelfBid)
}

func TestWithdrawBid_RequiresBidOwnership(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	require.NoError(t, h.market.PlaceBid(bob, singleContract, 0, amt(100)))

	assert.ErrorIs(t, h.market.WithdrawBid(carol, singleContract, 0), ErrNotBidder)
}

func TestWithdrawBid_ClearsBidAndCreditsBidder(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	require.NoError(t, h.market.PlaceBid(bob, singleContract, 0, amt(100)))
	require.NoError(t, h.market.WithdrawBid(bob, singleContract, 0))

	bid, err := h.market.GetBid(singleContract, 0)
	require.NoError(t, err)
	assert.False(t, bid.HasBid)
	assert.Equal(t, "", bid.Bidder)
	assert.Equal(t, "0", bid.Value)

	assert.Equal(t, "100", h.balance(t, bob).String())
}

func TestWithdrawBid_NoBid(t *testing.T) {
	h := newHarness(t)
	h.enableSingle(t, 5)
	h.single.Mint(0, alice)

	assert.ErrorIs(t, h.market.WithdrawBid(bob, singleContract, 0), ErrNotBidder)
}
