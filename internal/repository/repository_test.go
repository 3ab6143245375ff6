package repository

import (
	"testing"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func TestCollectionRepository(t *testing.T) {
	st := newTestStore(t)
	repo := NewCollectionRepository(st)

	_, err := repo.GetCollection("0xcontract")
	assert.ErrorIs(t, err, ErrCollectionNotFound)

	collection := entity.Collection{Contract: "0xcontract", Active: true, RoyaltyPercent: 5}
	require.NoError(t, st.Update(func(tx *bolt.Tx) error {
		return repo.SaveCollection(tx, collection)
	}))

	got, err := repo.GetCollection("0xcontract")
	require.NoError(t, err)
	assert.Equal(t, collection, got)

	// Saving again replaces the stored configuration wholesale.
	require.NoError(t, st.Update(func(tx *bolt.Tx) error {
		return repo.SaveCollection(tx, entity.Collection{Contract: "0xcontract"})
	}))

	got, err = repo.GetCollection("0xcontract")
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.Equal(t, uint(0), got.RoyaltyPercent)
}

func TestOfferRepository(t *testing.T) {
	st := newTestStore(t)
	repo := NewOfferRepository(st)

	_, err := repo.GetOffer("0xcontract", 7)
	assert.ErrorIs(t, err, ErrOfferNotFound)

	offer := entity.Offer{Contract: "0xcontract", TokenId: 7, ForSale: true, Seller: "0xalice", MinValue: "100"}
	require.NoError(t, st.Update(func(tx *bolt.Tx) error {
		return repo.SaveOffer(tx, offer)
	}))

	got, err := repo.GetOffer("0xcontract", 7)
	require.NoError(t, err)
	assert.Equal(t, offer, got)

	// Offers on the same token id in other contracts stay independent.
	_, err = repo.GetOffer("0xother", 7)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestBidRepository(t *testing.T) {
	st := newTestStore(t)
	repo := NewBidRepository(st)

	_, err := repo.GetBid("0xcontract", 7)
	assert.ErrorIs(t, err, ErrBidNotFound)

	bid := entity.Bid{Contract: "0xcontract", TokenId: 7, HasBid: true, Bidder: "0xbob", Value: "50"}
	require.NoError(t, st.Update(func(tx *bolt.Tx) error {
		return repo.SaveBid(tx, bid)
	}))

	got, err := repo.GetBid("0xcontract", 7)
	require.NoError(t, err)
	assert.Equal(t, bid, got)
}
