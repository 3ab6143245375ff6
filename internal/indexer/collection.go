package indexer

import (
	"github.com/ZilDuck/nft-marketplace/internal/elastic_search"
	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/metadata"
	"go.uber.org/zap"
)

// CollectionIndexer keeps the collection directory searchable. On every
// update it also resolves the collection's published metadata so the index
// carries the display fields alongside the on-book configuration.
type CollectionIndexer interface {
	IndexCollection(msg interface{})
}

type collectionIndexer struct {
	elastic  elastic_search.Index
	metadata metadata.Service
}

func NewCollectionIndexer(elastic elastic_search.Index, metadata metadata.Service) CollectionIndexer {
	return collectionIndexer{elastic, metadata}
}

func (i collectionIndexer) IndexCollection(msg interface{}) {
	collection, ok := msg.(entity.Collection)
	if !ok {
		zap.L().Error("CollectionIndexer: Invalid collection event payload")
		return
	}

	zap.L().With(zap.String("contract", collection.Contract)).Info("CollectionIndexer: Index collection")

	if collection.Active && collection.MetadataUri != "" {
		if _, err := i.metadata.GetCollectionMetadata(collection); err != nil {
			zap.L().With(zap.Error(err), zap.String("contract", collection.Contract)).
				Warn("CollectionIndexer: Failed to resolve collection metadata")
		}
	}

	i.elastic.Save(elastic_search.CollectionIndex.Get(), collection)
}
