package repository

import (
	"errors"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	bolt "go.etcd.io/bbolt"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
)

type CollectionRepository interface {
	GetCollection(contract string) (entity.Collection, error)
	SaveCollection(tx *bolt.Tx, collection entity.Collection) error
}

type collectionRepository struct {
	store *store.Store
}

func NewCollectionRepository(store *store.Store) CollectionRepository {
	return collectionRepository{store}
}

func (r collectionRepository) GetCollection(contract string) (entity.Collection, error) {
	var collection entity.Collection

	found, err := r.store.Get(store.CollectionsBucket, []byte(entity.CreateCollectionSlug(contract)), &collection)
	if err != nil {
		return entity.Collection{}, err
	}
	if !found {
		return entity.Collection{}, ErrCollectionNotFound
	}

	return collection, nil
}

func (r collectionRepository) SaveCollection(tx *bolt.Tx, collection entity.Collection) error {
	return store.Put(tx, store.CollectionsBucket, []byte(collection.Slug()), collection)
}
