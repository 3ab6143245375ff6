package repository

import (
	"errors"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	bolt "go.etcd.io/bbolt"
)

var (
	ErrOfferNotFound = errors.New("offer not found")
)

type OfferRepository interface {
	GetOffer(contract string, tokenId uint64) (entity.Offer, error)
	SaveOffer(tx *bolt.Tx, offer entity.Offer) error
}

type offerRepository struct {
	store *store.Store
}

func NewOfferRepository(store *store.Store) OfferRepository {
	return offerRepository{store}
}

func (r offerRepository) GetOffer(contract string, tokenId uint64) (entity.Offer, error) {
	var offer entity.Offer

	found, err := r.store.Get(store.OffersBucket, []byte(entity.CreateTokenSlug(tokenId, contract)), &offer)
	if err != nil {
		return entity.Offer{}, err
	}
	if !found {
		return entity.Offer{}, ErrOfferNotFound
	}

	return offer, nil
}

func (r offerRepository) SaveOffer(tx *bolt.Tx, offer entity.Offer) error {
	return store.Put(tx, store.OffersBucket, []byte(offer.Slug()), offer)
}
