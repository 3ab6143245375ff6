package entity

// Bid is the single standing bid for one token. Value is the amount escrowed
// by the bidder when the bid was entered, held outside the ledger until the
// bid is accepted, withdrawn or beaten.
type Bid struct {
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	HasBid   bool   `json:"hasBid"`
	Bidder   string `json:"bidder"`
	Value    string `json:"value"`
}

func (b Bid) Slug() string {
	return CreateTokenSlug(b.TokenId, b.Contract)
}
