package di

import (
	"time"

	"github.com/ZilDuck/nft-marketplace/internal/api"
	"github.com/ZilDuck/nft-marketplace/internal/config"
	"github.com/ZilDuck/nft-marketplace/internal/elastic_search"
	"github.com/ZilDuck/nft-marketplace/internal/indexer"
	"github.com/ZilDuck/nft-marketplace/internal/market"
	"github.com/ZilDuck/nft-marketplace/internal/messenger"
	"github.com/ZilDuck/nft-marketplace/internal/metadata"
	"github.com/ZilDuck/nft-marketplace/internal/registry"
	"github.com/ZilDuck/nft-marketplace/internal/repository"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/patrickmn/go-cache"
	"github.com/sarulabs/di/v2"
	"go.uber.org/zap"
)

var definitions = []di.Def{
	{
		Name: "elastic",
		Build: func(ctn di.Container) (interface{}, error) {
			elastic, err := elastic_search.New()
			if err != nil {
				zap.L().With(zap.Error(err)).Fatal("Failed to start ES")
			}

			return elastic, nil
		},
	},
	{
		Name: "cache",
		Build: func(ctn di.Container) (interface{}, error) {
			return cache.New(5*time.Minute, 10*time.Minute), nil
		},
	},
	{
		Name: "http.client",
		Build: func(ctn di.Container) (interface{}, error) {
			client := retryablehttp.NewClient()
			client.HTTPClient.Timeout = time.Duration(config.Get().MetadataTimeout) * time.Second
			client.Logger = nil

			return client, nil
		},
	},
	{
		Name: "store",
		Build: func(ctn di.Container) (interface{}, error) {
			st, err := store.Open(config.Get().DataPath)
			if err != nil {
				return nil, err
			}

			return st, nil
		},
		Close: func(obj interface{}) error {
			return obj.(*store.Store).Close()
		},
	},
	{
		Name: "collection.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewCollectionRepository(ctn.Get("store").(*store.Store)), nil
		},
	},
	{
		Name: "offer.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewOfferRepository(ctn.Get("store").(*store.Store)), nil
		},
	},
	{
		Name: "bid.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewBidRepository(ctn.Get("store").(*store.Store)), nil
		},
	},
	{
		Name: "ledger.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewLedgerRepository(ctn.Get("store").(*store.Store)), nil
		},
	},
	{
		Name: "registry.resolver",
		Build: func(ctn di.Container) (interface{}, error) {
			cfg := config.Get()

			return registry.NewDemoResolver(
				cfg.Demo.SingleContracts,
				cfg.Demo.QuantityContracts,
				cfg.Demo.Admin,
				cfg.Operator,
				uint64(cfg.Demo.TokenSupply),
			), nil
		},
	},
	{
		Name: "payments",
		Build: func(ctn di.Container) (interface{}, error) {
			return market.LogSender{}, nil
		},
	},
	{
		Name: "market",
		Build: func(ctn di.Container) (interface{}, error) {
			return market.NewMarket(
				ctn.Get("store").(*store.Store),
				ctn.Get("collection.repo").(repository.CollectionRepository),
				ctn.Get("offer.repo").(repository.OfferRepository),
				ctn.Get("bid.repo").(repository.BidRepository),
				ctn.Get("ledger.repo").(repository.LedgerRepository),
				ctn.Get("registry.resolver").(registry.Resolver),
				ctn.Get("payments").(market.PaymentSender),
				config.Get().Operator,
			), nil
		},
	},
	{
		Name: "metadata",
		Build: func(ctn di.Container) (interface{}, error) {
			return metadata.NewMetadataService(
				ctn.Get("http.client").(*retryablehttp.Client),
				ctn.Get("cache").(*cache.Cache),
			), nil
		},
	},
	{
		Name: "messenger",
		Build: func(ctn di.Container) (interface{}, error) {
			return messenger.NewMessenger(config.Get().Amqp.Uri), nil
		},
	},
	{
		Name: "notifier",
		Build: func(ctn di.Container) (interface{}, error) {
			return messenger.NewNotifier(ctn.Get("messenger").(messenger.MessageService)), nil
		},
	},
	{
		Name: "sale.indexer",
		Build: func(ctn di.Container) (interface{}, error) {
			return indexer.NewSaleIndexer(ctn.Get("elastic").(elastic_search.Index)), nil
		},
	},
	{
		Name: "collection.indexer",
		Build: func(ctn di.Container) (interface{}, error) {
			return indexer.NewCollectionIndexer(
				ctn.Get("elastic").(elastic_search.Index),
				ctn.Get("metadata").(metadata.Service),
			), nil
		},
	},
	{
		Name: "api.server",
		Build: func(ctn di.Container) (interface{}, error) {
			return api.NewServer(
				ctn.Get("market").(market.Market),
				ctn.Get("metadata").(metadata.Service),
			), nil
		},
	},
}
