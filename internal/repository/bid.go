package repository

import (
	"errors"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	bolt "go.etcd.io/bbolt"
)

var (
	ErrBidNotFound = errors.New("bid not found")
)

type BidRepository interface {
	GetBid(contract string, tokenId uint64) (entity.Bid, error)
	SaveBid(tx *bolt.Tx, bid entity.Bid) error
}

type bidRepository struct {
	store *store.Store
}

func NewBidRepository(store *store.Store) BidRepository {
	return bidRepository{store}
}

func (r bidRepository) GetBid(contract string, tokenId uint64) (entity.Bid, error) {
	var bid entity.Bid

	found, err := r.store.Get(store.BidsBucket, []byte(entity.CreateTokenSlug(tokenId, contract)), &bid)
	if err != nil {
		return entity.Bid{}, err
	}
	if !found {
		return entity.Bid{}, ErrBidNotFound
	}

	return bid, nil
}

func (r bidRepository) SaveBid(tx *bolt.Tx, bid entity.Bid) error {
	return store.Put(tx, store.BidsBucket, []byte(bid.Slug()), bid)
}
