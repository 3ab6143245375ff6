package main

import (
	"encoding/json"

	"github.com/ZilDuck/nft-marketplace/internal/config"
	"github.com/ZilDuck/nft-marketplace/internal/config/di"
	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/messenger"
	"go.uber.org/zap"
)

var messageService messenger.MessageService

func main() {
	config.Init("subscriber")

	container, err := di.NewContainer()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to build container")
	}
	messageService = container.GetMessenger()

	reportQueueSizes()

	go consumeSales()
	go consumeCollections()
	go consumeBids()

	for {
		switch {}
	}
}

func reportQueueSizes() {
	for _, item := range []messenger.Item{messenger.SaleSettled, messenger.CollectionUpdated, messenger.BidEntered} {
		size, err := messageService.GetQueueSize(item)
		if err != nil {
			zap.L().With(zap.Error(err), zap.String("queue", string(item))).Error("Failed to get queue size")
			continue
		}
		zap.L().With(zap.String("queue", string(item)), zap.Int("size", *size)).Info("Queue size")
	}
}

func consumeSales() {
	zap.L().Info("Subscribing to settled sales")
	err := messageService.ConsumeMessages(messenger.SaleSettled, func(msg string) {
		var sale entity.Sale
		if err := json.Unmarshal([]byte(msg), &sale); err != nil {
			zap.L().With(zap.Error(err)).Error("Failed to read sale message")
			return
		}
		zap.L().With(
			zap.String("contract", sale.Contract),
			zap.Uint64("tokenId", sale.TokenId),
			zap.String("buyer", sale.Buyer),
			zap.String("seller", sale.Seller),
			zap.String("cost", sale.Cost),
		).Info("Sale settled")
	})
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to consume settled sales")
	}
}

func consumeCollections() {
	zap.L().Info("Subscribing to collection updates")
	err := messageService.ConsumeMessages(messenger.CollectionUpdated, func(msg string) {
		var collection entity.Collection
		if err := json.Unmarshal([]byte(msg), &collection); err != nil {
			zap.L().With(zap.Error(err)).Error("Failed to read collection message")
			return
		}
		zap.L().With(
			zap.String("contract", collection.Contract),
			zap.Bool("active", collection.Active),
		).Info("Collection updated")
	})
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to consume collection updates")
	}
}

func consumeBids() {
	zap.L().Info("Subscribing to entered bids")
	err := messageService.ConsumeMessages(messenger.BidEntered, func(msg string) {
		var bid entity.Bid
		if err := json.Unmarshal([]byte(msg), &bid); err != nil {
			zap.L().With(zap.Error(err)).Error("Failed to read bid message")
			return
		}
		zap.L().With(
			zap.String("contract", bid.Contract),
			zap.Uint64("tokenId", bid.TokenId),
			zap.String("bidder", bid.Bidder),
			zap.String("value", bid.Value),
		).Info("Bid entered")
	})
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to consume entered bids")
	}
}
