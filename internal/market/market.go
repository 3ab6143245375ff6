package market

import (
	"errors"
	"math/big"
	"sync"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/event"
	"github.com/ZilDuck/nft-marketplace/internal/registry"
	"github.com/ZilDuck/nft-marketplace/internal/repository"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Market is the marketplace engine: collection directory, offer book, bid
// book, settlement and the pull-payment ledger. Every mutating operation is
// serialized, validates all of its preconditions up front, commits its state
// changes in one transaction, and only then talks to the registry.
type Market interface {
	SetCollection(caller, contract string, quantityModel bool, royaltyPercent uint, metadataUri string) error
	DisableCollection(caller, contract string) error
	GetCollection(contract string) (entity.Collection, error)

	OfferForSale(caller, contract string, tokenId uint64, minValue *big.Int, onlySellTo string) error
	RevokeOffer(caller, contract string, tokenId uint64) error
	GetOffer(contract string, tokenId uint64) (entity.Offer, error)

	PlaceBid(caller, contract string, tokenId uint64, value *big.Int) error
	WithdrawBid(caller, contract string, tokenId uint64) error
	GetBid(contract string, tokenId uint64) (entity.Bid, error)

	AcceptOffer(caller, contract string, tokenId uint64, payment *big.Int) error
	AcceptBid(caller, contract string, tokenId uint64, minPrice *big.Int) error

	Withdraw(caller string) (*big.Int, error)
	PendingBalance(address string) (*big.Int, error)
}

type market struct {
	mtx         sync.Mutex
	store       *store.Store
	collections repository.CollectionRepository
	offers      repository.OfferRepository
	bids        repository.BidRepository
	ledger      repository.LedgerRepository
	registries  registry.Resolver
	payments    PaymentSender
	operator    string
}

func NewMarket(
	store *store.Store,
	collections repository.CollectionRepository,
	offers repository.OfferRepository,
	bids repository.BidRepository,
	ledger repository.LedgerRepository,
	registries registry.Resolver,
	payments PaymentSender,
	operator string,
) Market {
	return &market{
		store:       store,
		collections: collections,
		offers:      offers,
		bids:        bids,
		ledger:      ledger,
		registries:  registries,
		payments:    payments,
		operator:    operator,
	}
}

func (m *market) SetCollection(caller, contract string, quantityModel bool, royaltyPercent uint, metadataUri string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if royaltyPercent > 100 {
		return ErrInvalidRoyalty
	}

	admin, err := m.administrator(contract)
	if err != nil {
		return err
	}
	if caller != admin {
		return ErrUnauthorized
	}

	collection := entity.Collection{
		Contract:       contract,
		Active:         true,
		QuantityModel:  quantityModel,
		RoyaltyPercent: royaltyPercent,
		MetadataUri:    metadataUri,
	}

	err = m.store.Update(func(tx *bolt.Tx) error {
		return m.collections.SaveCollection(tx, collection)
	})
	if err != nil {
		return err
	}

	zap.L().With(zap.String("contract", contract), zap.Uint("royalty", royaltyPercent)).Info("Market: Collection updated")
	event.EmitEvent(event.CollectionUpdatedEvent, collection)

	return nil
}

func (m *market) DisableCollection(caller, contract string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if _, err := m.activeCollection(contract); err != nil {
		return err
	}

	admin, err := m.administrator(contract)
	if err != nil {
		return err
	}
	if caller != admin {
		return ErrUnauthorized
	}

	// Offers and bids stay in storage. They are unreachable while the
	// collection is inactive, but escrowed bid value remains claimable.
	collection := entity.Collection{Contract: contract}

	err = m.store.Update(func(tx *bolt.Tx) error {
		return m.collections.SaveCollection(tx, collection)
	})
	if err != nil {
		return err
	}

	zap.L().With(zap.String("contract", contract)).Info("Market: Collection disabled")
	event.EmitEvent(event.CollectionDisabledEvent, collection)

	return nil
}

func (m *market) GetCollection(contract string) (entity.Collection, error) {
	collection, err := m.collections.GetCollection(contract)
	if err != nil {
		if errors.Is(err, repository.ErrCollectionNotFound) {
			return entity.Collection{Contract: contract}, nil
		}
		return entity.Collection{}, err
	}

	return collection, nil
}

func (m *market) GetOffer(contract string, tokenId uint64) (entity.Offer, error) {
	offer, err := m.offers.GetOffer(contract, tokenId)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return entity.Offer{Contract: contract, TokenId: tokenId, MinValue: "0"}, nil
		}
		return entity.Offer{}, err
	}

	return offer, nil
}

func (m *market) GetBid(contract string, tokenId uint64) (entity.Bid, error) {
	bid, err := m.bids.GetBid(contract, tokenId)
	if err != nil {
		if errors.Is(err, repository.ErrBidNotFound) {
			return entity.Bid{Contract: contract, TokenId: tokenId, Value: "0"}, nil
		}
		return entity.Bid{}, err
	}

	return bid, nil
}

func (m *market) PendingBalance(address string) (*big.Int, error) {
	return m.ledger.GetBalance(address)
}

func (m *market) activeCollection(contract string) (entity.Collection, error) {
	collection, err := m.collections.GetCollection(contract)
	if err != nil {
		if errors.Is(err, repository.ErrCollectionNotFound) {
			return entity.Collection{}, ErrNotActive
		}
		return entity.Collection{}, err
	}
	if !collection.Active {
		return entity.Collection{}, ErrNotActive
	}

	return collection, nil
}

func (m *market) administrator(contract string) (string, error) {
	client, err := m.registries.Registry(contract)
	if err != nil {
		return "", err
	}

	return client.CurrentAdministrator()
}

// ownsToken asks the registry whether address currently owns the token. Under
// the quantity model any positive holding counts as ownership.
func (m *market) ownsToken(collection entity.Collection, address string, tokenId uint64) (bool, error) {
	client, err := m.registries.Registry(collection.Contract)
	if err != nil {
		return false, err
	}

	if collection.QuantityModel {
		holder, ok := client.(registry.QuantityHolder)
		if !ok {
			return false, registry.ErrWrongModel
		}

		balance, err := holder.BalanceOf(address, tokenId)
		if err != nil {
			return false, err
		}

		return balance > 0, nil
	}

	single, ok := client.(registry.SingleOwner)
	if !ok {
		return false, registry.ErrWrongModel
	}

	// A token the registry has never minted is an error, not a non-owner.
	owner, err := single.OwnerOf(tokenId)
	if err != nil {
		return false, err
	}

	return owner == address, nil
}

func (m *market) approvedForTransfer(collection entity.Collection, owner string) (bool, error) {
	client, err := m.registries.Registry(collection.Contract)
	if err != nil {
		return false, err
	}

	return client.IsApprovedForTransfer(owner, m.operator)
}

// transferToken moves the token between parties. The quantity model always
// trades a single unit per settlement.
func (m *market) transferToken(collection entity.Collection, from, to string, tokenId uint64) error {
	client, err := m.registries.Registry(collection.Contract)
	if err != nil {
		return err
	}

	if collection.QuantityModel {
		holder, ok := client.(registry.QuantityHolder)
		if !ok {
			return registry.ErrWrongModel
		}

		return holder.TransferQuantity(from, to, tokenId, 1)
	}

	single, ok := client.(registry.SingleOwner)
	if !ok {
		return registry.ErrWrongModel
	}

	return single.Transfer(from, to, tokenId)
}

func normalizeAmount(value *big.Int) (*big.Int, error) {
	if value == nil {
		return new(big.Int), nil
	}
	if value.Sign() < 0 {
		return nil, ErrInvalidAmount
	}

	return value, nil
}
