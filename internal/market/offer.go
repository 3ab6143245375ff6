package market

import (
	"math/big"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/event"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

func (m *market) OfferForSale(caller, contract string, tokenId uint64, minValue *big.Int, onlySellTo string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	minValue, err := normalizeAmount(minValue)
	if err != nil {
		return err
	}

	collection, err := m.activeCollection(contract)
	if err != nil {
		return err
	}

	owns, err := m.ownsToken(collection, caller, tokenId)
	if err != nil {
		return err
	}
	if !owns {
		return ErrNotOwner
	}

	approved, err := m.approvedForTransfer(collection, caller)
	if err != nil {
		return err
	}
	if !approved {
		return ErrNotApproved
	}

	offer := entity.Offer{
		Contract:   contract,
		TokenId:    tokenId,
		ForSale:    true,
		Seller:     caller,
		MinValue:   formatAmount(minValue),
		OnlySellTo: onlySellTo,
	}

	err = m.store.Update(func(tx *bolt.Tx) error {
		return m.offers.SaveOffer(tx, offer)
	})
	if err != nil {
		return err
	}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("minValue", offer.MinValue),
	).Info("Market: Token offered")
	event.EmitEvent(event.TokenOfferedEvent, offer)

	return nil
}

func (m *market) RevokeOffer(caller, contract string, tokenId uint64) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	collection, err := m.activeCollection(contract)
	if err != nil {
		return err
	}

	owns, err := m.ownsToken(collection, caller, tokenId)
	if err != nil {
		return err
	}
	if !owns {
		return ErrNotOwner
	}

	// Zero state, but the seller field keeps the revoking owner.
	offer := entity.Offer{
		Contract: contract,
		TokenId:  tokenId,
		Seller:   caller,
		MinValue: "0",
	}

	err = m.store.Update(func(tx *bolt.Tx) error {
		return m.offers.SaveOffer(tx, offer)
	})
	if err != nil {
		return err
	}

	zap.L().With(zap.String("contract", contract), zap.Uint64("tokenId", tokenId)).Info("Market: Offer revoked")
	event.EmitEvent(event.TokenNoLongerForSaleEvent, offer)

	return nil
}
