package event

type Type string

const (
	CollectionUpdatedEvent    Type = "CollectionUpdatedEvent"
	CollectionDisabledEvent   Type = "CollectionDisabledEvent"
	TokenOfferedEvent         Type = "TokenOfferedEvent"
	TokenNoLongerForSaleEvent Type = "TokenNoLongerForSaleEvent"
	TokenBidEnteredEvent      Type = "TokenBidEnteredEvent"
	TokenBidWithdrawnEvent    Type = "TokenBidWithdrawnEvent"
	SaleSettledEvent          Type = "SaleSettledEvent"
)
