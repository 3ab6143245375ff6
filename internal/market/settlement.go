package market

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/event"
	"github.com/ZilDuck/nft-marketplace/internal/repository"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

func (m *market) AcceptOffer(caller, contract string, tokenId uint64, payment *big.Int) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	payment, err := normalizeAmount(payment)
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

	offer, err := m.standingOffer(contract, tokenId)
	if err != nil {
		return err
	}
	if !offer.ForSale {
		return ErrNotForSale
	}
	if offer.OnlySellTo != "" && offer.OnlySellTo != caller {
		return ErrExclusiveBuyer
	}
	if payment.Cmp(parseAmount(offer.MinValue)) < 0 {
		return ErrInsufficientPayment
	}

	// The listing may be stale: the seller could have moved the token outside
	// the marketplace since offering it. Ownership and approval are
	// re-validated against the registry at settlement time.
	sellerOwns, err := m.ownsToken(collection, offer.Seller, tokenId)
	if err != nil {
		return err
	}
	if !sellerOwns {
		return ErrStaleSeller
	}

	approved, err := m.approvedForTransfer(collection, offer.Seller)
	if err != nil {
		return err
	}
	if !approved {
		return ErrNotApproved
	}

	admin, err := m.administrator(contract)
	if err != nil {
		return err
	}

	// Overpayment above the minimum is not refunded; the full payment is
	// split into royalty and proceeds.
	royalty, proceeds := splitRoyalty(payment, collection.RoyaltyPercent)

	standing, err := m.standingBid(contract, tokenId)
	if err != nil {
		return err
	}

	// A buyer who also holds the standing bid gets that escrow back; anyone
	// else's bid stays untouched.
	refundBidder := ""
	if standing.HasBid && standing.Bidder == caller {
		refundBidder = caller
	}

	settled := entity.Offer{Contract: contract, TokenId: tokenId, Seller: caller, MinValue: "0"}
	cleared := entity.Bid{Contract: contract, TokenId: tokenId, Value: "0"}

	err = m.store.Update(func(tx *bolt.Tx) error {
		if err := m.ledger.Credit(tx, admin, royalty); err != nil {
			return err
		}
		if err := m.ledger.Credit(tx, offer.Seller, proceeds); err != nil {
			return err
		}
		if err := m.offers.SaveOffer(tx, settled); err != nil {
			return err
		}
		if refundBidder != "" {
			if err := m.ledger.Credit(tx, refundBidder, parseAmount(standing.Value)); err != nil {
				return err
			}
			if err := m.bids.SaveBid(tx, cleared); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// State is committed before the external call; a nested call into the
	// engine can no longer double-spend the listing or the escrow.
	if err := m.transferToken(collection, offer.Seller, caller, tokenId); err != nil {
		m.rollback(settlementRollback{
			admin:        admin,
			royalty:      royalty,
			seller:       offer.Seller,
			proceeds:     proceeds,
			offer:        offer,
			bid:          standing,
			refundBidder: refundBidder,
		})
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	sale := entity.NewSale(
		contract, tokenId, caller, offer.Seller,
		formatAmount(payment), formatAmount(royalty), formatAmount(proceeds),
		entity.SaleViaOffer,
	)

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("buyer", caller),
		zap.String("seller", offer.Seller),
		zap.String("cost", sale.Cost),
	).Info("Market: Sale settled via offer")
	event.EmitEvent(event.SaleSettledEvent, sale)

	return nil
}

func (m *market) AcceptBid(caller, contract string, tokenId uint64, minPrice *big.Int) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	minPrice, err := normalizeAmount(minPrice)
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

	standing, err := m.standingBid(contract, tokenId)
	if err != nil {
		return err
	}
	if !standing.HasBid {
		return ErrNoBid
	}

	// The bid may have been replaced since the owner decided to accept;
	// minPrice pins the owner's expectation.
	value := parseAmount(standing.Value)
	if value.Cmp(minPrice) < 0 {
		return ErrBidTooLow
	}

	admin, err := m.administrator(contract)
	if err != nil {
		return err
	}

	royalty, proceeds := splitRoyalty(value, collection.RoyaltyPercent)

	prevOffer, err := m.standingOffer(contract, tokenId)
	if err != nil {
		return err
	}

	settled := entity.Offer{Contract: contract, TokenId: tokenId, Seller: standing.Bidder, MinValue: "0"}
	cleared := entity.Bid{Contract: contract, TokenId: tokenId, Value: "0"}

	err = m.store.Update(func(tx *bolt.Tx) error {
		if err := m.ledger.Credit(tx, admin, royalty); err != nil {
			return err
		}
		if err := m.ledger.Credit(tx, caller, proceeds); err != nil {
			return err
		}
		if err := m.bids.SaveBid(tx, cleared); err != nil {
			return err
		}
		// Any listing by the previous owner dies with the sale; the offer row
		// carries the new holder for bookkeeping continuity.
		return m.offers.SaveOffer(tx, settled)
	})
	if err != nil {
		return err
	}

	if err := m.transferToken(collection, caller, standing.Bidder, tokenId); err != nil {
		m.rollback(settlementRollback{
			admin:      admin,
			royalty:    royalty,
			seller:     caller,
			proceeds:   proceeds,
			offer:      prevOffer,
			bid:        standing,
			restoreBid: true,
		})
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	sale := entity.NewSale(
		contract, tokenId, standing.Bidder, caller,
		formatAmount(value), formatAmount(royalty), formatAmount(proceeds),
		entity.SaleViaBid,
	)

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("buyer", standing.Bidder),
		zap.String("seller", caller),
		zap.String("cost", sale.Cost),
	).Info("Market: Sale settled via bid")
	event.EmitEvent(event.SaleSettledEvent, sale)

	return nil
}

func (m *market) standingOffer(contract string, tokenId uint64) (entity.Offer, error) {
	offer, err := m.offers.GetOffer(contract, tokenId)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return entity.Offer{Contract: contract, TokenId: tokenId, MinValue: "0"}, nil
		}
		return entity.Offer{}, err
	}

	return offer, nil
}

// settlementRollback captures everything a failed registry transfer must
// undo: the two ledger credits, the re-seeded offer, and the bid when it was
// cleared (either refunded to the buyer or consumed by the sale).
type settlementRollback struct {
	admin        string
	royalty      *big.Int
	seller       string
	proceeds     *big.Int
	offer        entity.Offer
	bid          entity.Bid
	refundBidder string
	restoreBid   bool
}

func (m *market) rollback(r settlementRollback) {
	err := m.store.Update(func(tx *bolt.Tx) error {
		if err := m.ledger.Debit(tx, r.admin, r.royalty); err != nil {
			return err
		}
		if err := m.ledger.Debit(tx, r.seller, r.proceeds); err != nil {
			return err
		}
		if err := m.offers.SaveOffer(tx, r.offer); err != nil {
			return err
		}
		if r.refundBidder != "" {
			if err := m.ledger.Debit(tx, r.refundBidder, parseAmount(r.bid.Value)); err != nil {
				return err
			}
			if err := m.bids.SaveBid(tx, r.bid); err != nil {
				return err
			}
		}
		if r.restoreBid {
			if err := m.bids.SaveBid(tx, r.bid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().With(zap.Error(err)).Error("Market: Failed to roll back settlement")
	}
}
