package di

import (
	"github.com/ZilDuck/nft-marketplace/internal/api"
	"github.com/ZilDuck/nft-marketplace/internal/elastic_search"
	"github.com/ZilDuck/nft-marketplace/internal/indexer"
	"github.com/ZilDuck/nft-marketplace/internal/market"
	"github.com/ZilDuck/nft-marketplace/internal/messenger"
	"github.com/ZilDuck/nft-marketplace/internal/metadata"
	"github.com/ZilDuck/nft-marketplace/internal/registry"
	"github.com/sarulabs/di/v2"
)

type Container struct {
	ctn di.Container
}

func NewContainer() (*Container, error) {
	builder, err := di.NewBuilder()
	if err != nil {
		return nil, err
	}

	if err := builder.Add(definitions...); err != nil {
		return nil, err
	}

	return &Container{ctn: builder.Build()}, nil
}

func (c *Container) Delete() error {
	return c.ctn.Delete()
}

func (c *Container) GetMarket() market.Market {
	return c.ctn.Get("market").(market.Market)
}

func (c *Container) GetElastic() elastic_search.Index {
	return c.ctn.Get("elastic").(elastic_search.Index)
}

func (c *Container) GetMetadataService() metadata.Service {
	return c.ctn.Get("metadata").(metadata.Service)
}

func (c *Container) GetMessenger() messenger.MessageService {
	return c.ctn.Get("messenger").(messenger.MessageService)
}

func (c *Container) GetNotifier() messenger.Notifier {
	return c.ctn.Get("notifier").(messenger.Notifier)
}

func (c *Container) GetSaleIndexer() indexer.SaleIndexer {
	return c.ctn.Get("sale.indexer").(indexer.SaleIndexer)
}

func (c *Container) GetCollectionIndexer() indexer.CollectionIndexer {
	return c.ctn.Get("collection.indexer").(indexer.CollectionIndexer)
}

func (c *Container) GetRegistryResolver() registry.Resolver {
	return c.ctn.Get("registry.resolver").(registry.Resolver)
}

func (c *Container) GetApiServer() api.Server {
	return c.ctn.Get("api.server").(api.Server)
}
