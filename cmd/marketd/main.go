package main

import (
	"net/http"

	"github.com/ZilDuck/nft-marketplace/internal/config"
	"github.com/ZilDuck/nft-marketplace/internal/config/di"
	"github.com/ZilDuck/nft-marketplace/internal/event"
	"go.uber.org/zap"
)

var container *di.Container

func main() {
	config.Init("marketd")

	var err error
	container, err = di.NewContainer()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to build container")
	}
	defer func() { _ = container.Delete() }()

	container.GetElastic().InstallMappings()

	event.AddEventListener(event.SaleSettledEvent, container.GetSaleIndexer().IndexSale)
	event.AddEventListener(event.SaleSettledEvent, container.GetNotifier().NotifySale)
	event.AddEventListener(event.CollectionUpdatedEvent, container.GetCollectionIndexer().IndexCollection)
	event.AddEventListener(event.CollectionUpdatedEvent, container.GetNotifier().NotifyCollection)
	event.AddEventListener(event.CollectionDisabledEvent, container.GetCollectionIndexer().IndexCollection)
	event.AddEventListener(event.CollectionDisabledEvent, container.GetNotifier().NotifyCollectionDisabled)
	event.AddEventListener(event.TokenOfferedEvent, container.GetNotifier().NotifyOffer)
	event.AddEventListener(event.TokenNoLongerForSaleEvent, container.GetNotifier().NotifyOfferRevoked)
	event.AddEventListener(event.TokenBidEnteredEvent, container.GetNotifier().NotifyBid)
	event.AddEventListener(event.TokenBidWithdrawnEvent, container.GetNotifier().NotifyBidWithdrawn)

	zap.L().With(zap.String("port", config.Get().ApiPort)).Info("Marketplace Started")

	if err := http.ListenAndServe(":"+config.Get().ApiPort, container.GetApiServer().Router()); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to start marketplace")
	}
}
