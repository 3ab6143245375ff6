package market

import (
	"errors"
	"math/big"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/event"
	"github.com/ZilDuck/nft-marketplace/internal/repository"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

func (m *market) PlaceBid(caller, contract string, tokenId uint64, value *big.Int) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	value, err := normalizeAmount(value)
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
	if owns {
		return ErrSelfBid
	}

	standing, err := m.standingBid(contract, tokenId)
	if err != nil {
		return err
	}

	// The new bid must strictly improve on the standing bid; a first bid must
	// carry positive value. Non-improving bids are rejected rather than
	// silently absorbed.
	if standing.HasBid {
		if value.Cmp(parseAmount(standing.Value)) <= 0 {
			return ErrBidTooLow
		}
	} else if value.Sign() <= 0 {
		return ErrBidTooLow
	}

	bid := entity.Bid{
		Contract: contract,
		TokenId:  tokenId,
		HasBid:   true,
		Bidder:   caller,
		Value:    formatAmount(value),
	}

	err = m.store.Update(func(tx *bolt.Tx) error {
		if standing.HasBid {
			if err := m.ledger.Credit(tx, standing.Bidder, parseAmount(standing.Value)); err != nil {
				return err
			}
		}
		return m.bids.SaveBid(tx, bid)
	})
	if err != nil {
		return err
	}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("bidder", caller),
		zap.String("value", bid.Value),
	).Info("Market: Bid entered")
	event.EmitEvent(event.TokenBidEnteredEvent, bid)

	return nil
}

func (m *market) WithdrawBid(caller, contract string, tokenId uint64) error {
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
	if owns {
		return ErrSelfBid
	}

	standing, err := m.standingBid(contract, tokenId)
	if err != nil {
		return err
	}
	if !standing.HasBid || standing.Bidder != caller {
		return ErrNotBidder
	}

	cleared := entity.Bid{Contract: contract, TokenId: tokenId, Value: "0"}

	err = m.store.Update(func(tx *bolt.Tx) error {
		if err := m.ledger.Credit(tx, caller, parseAmount(standing.Value)); err != nil {
			return err
		}
		return m.bids.SaveBid(tx, cleared)
	})
	if err != nil {
		return err
	}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("bidder", caller),
	).Info("Market: Bid withdrawn")
	event.EmitEvent(event.TokenBidWithdrawnEvent, standing)

	return nil
}

// standingBid returns the stored bid, or a zero bid when none was ever made.
func (m *market) standingBid(contract string, tokenId uint64) (entity.Bid, error) {
	bid, err := m.bids.GetBid(contract, tokenId)
	if err != nil {
		if errors.Is(err, repository.ErrBidNotFound) {
			return entity.Bid{Contract: contract, TokenId: tokenId, Value: "0"}, nil
		}
		return entity.Bid{}, err
	}

	return bid, nil
}
