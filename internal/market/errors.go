package market

import "errors"

var (
	// ErrNotActive rejects any operation against a collection that has not
	// been enabled by the registry administrator.
	ErrNotActive = errors.New("market: collection must be enabled by the registry administrator")

	// ErrUnauthorized rejects collection changes from anyone but the
	// registry's current administrator.
	ErrUnauthorized = errors.New("market: caller must be the registry administrator")

	// ErrNotOwner rejects owner-only operations from non-owners.
	ErrNotOwner = errors.New("market: caller must own the token")

	// ErrNotApproved rejects listings and settlements while the marketplace
	// lacks transfer rights from the seller.
	ErrNotApproved = errors.New("market: marketplace is not approved to transfer the token")

	// ErrNotForSale rejects settlement when no active offer stands.
	ErrNotForSale = errors.New("market: token is not for sale")

	// ErrNoBid rejects bid acceptance when no bid stands.
	ErrNoBid = errors.New("market: no bid exists for the token")

	// ErrSelfBid rejects owners bidding on or buying their own token.
	ErrSelfBid = errors.New("market: token owner cannot enter bid to self")

	// ErrNotBidder rejects bid withdrawal by anyone but the original bidder.
	ErrNotBidder = errors.New("market: only the original bidder can withdraw the bid")

	// ErrBidTooLow rejects bids that do not strictly improve on the standing
	// bid, and bid acceptance below the owner's stated minimum.
	ErrBidTooLow = errors.New("market: bid does not meet the required amount")

	// ErrInsufficientPayment rejects offer acceptance below the minimum price.
	ErrInsufficientPayment = errors.New("market: payment is below the minimum sale price")

	// ErrStaleSeller rejects settlement of a listing whose seller no longer
	// owns the token.
	ErrStaleSeller = errors.New("market: seller is no longer the token owner")

	// ErrExclusiveBuyer rejects offer acceptance by anyone but the designated
	// buyer of a restricted listing.
	ErrExclusiveBuyer = errors.New("market: token may only be sold to the designated buyer")

	// ErrNothingToWithdraw rejects withdrawal of a zero balance.
	ErrNothingToWithdraw = errors.New("market: no pending balance to withdraw")

	// ErrInvalidAmount rejects negative or malformed monetary values.
	ErrInvalidAmount = errors.New("market: amount must be a non-negative integer")

	// ErrInvalidRoyalty rejects royalty percentages outside 0..100.
	ErrInvalidRoyalty = errors.New("market: royalty percent must be between 0 and 100")

	// ErrTransferFailed wraps a registry transfer failure after the engine has
	// rolled its own state back.
	ErrTransferFailed = errors.New("market: registry transfer failed")

	// ErrPayoutFailed wraps an outbound payment failure after the zeroed
	// balance has been restored.
	ErrPayoutFailed = errors.New("market: outbound payment failed")
)
