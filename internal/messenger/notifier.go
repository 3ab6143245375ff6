package messenger

import (
	"encoding/json"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"go.uber.org/zap"
)

// Notifier publishes marketplace events onto the message queue for external
// consumers. Its methods take the raw event payload so they can be registered
// directly as event listeners.
type Notifier interface {
	NotifySale(msg interface{})
	NotifyCollection(msg interface{})
	NotifyCollectionDisabled(msg interface{})
	NotifyOffer(msg interface{})
	NotifyOfferRevoked(msg interface{})
	NotifyBid(msg interface{})
	NotifyBidWithdrawn(msg interface{})
}

type notifier struct {
	messenger MessageService
}

func NewNotifier(messenger MessageService) Notifier {
	return notifier{messenger}
}

func (n notifier) NotifySale(msg interface{}) {
	sale, ok := msg.(entity.Sale)
	if !ok {
		zap.L().Error("Notifier: Invalid sale event payload")
		return
	}

	n.publish(SaleSettled, sale)
}

func (n notifier) NotifyCollection(msg interface{}) {
	n.publishCollection(CollectionUpdated, msg)
}

func (n notifier) NotifyCollectionDisabled(msg interface{}) {
	n.publishCollection(CollectionDisabled, msg)
}

func (n notifier) NotifyOffer(msg interface{}) {
	n.publishOffer(TokenOffered, msg)
}

func (n notifier) NotifyOfferRevoked(msg interface{}) {
	n.publishOffer(OfferRevoked, msg)
}

func (n notifier) NotifyBid(msg interface{}) {
	n.publishBid(BidEntered, msg)
}

func (n notifier) NotifyBidWithdrawn(msg interface{}) {
	n.publishBid(BidWithdrawn, msg)
}

func (n notifier) publishCollection(item Item, msg interface{}) {
	collection, ok := msg.(entity.Collection)
	if !ok {
		zap.L().With(zap.String("item", string(item))).Error("Notifier: Invalid collection event payload")
		return
	}

	n.publish(item, collection)
}

func (n notifier) publishOffer(item Item, msg interface{}) {
	offer, ok := msg.(entity.Offer)
	if !ok {
		zap.L().With(zap.String("item", string(item))).Error("Notifier: Invalid offer event payload")
		return
	}

	n.publish(item, offer)
}

func (n notifier) publishBid(item Item, msg interface{}) {
	bid, ok := msg.(entity.Bid)
	if !ok {
		zap.L().With(zap.String("item", string(item))).Error("Notifier: Invalid bid event payload")
		return
	}

	n.publish(item, bid)
}

func (n notifier) publish(item Item, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		zap.L().With(zap.Error(err)).Error("Notifier: Failed to marshal payload")
		return
	}

	if err := n.messenger.SendMessage(item, body, false); err != nil {
		zap.L().With(zap.Error(err), zap.String("item", string(item))).Error("Notifier: Failed to publish")
	}
}
