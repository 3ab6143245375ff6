package entity

import (
	"fmt"
	"github.com/gosimple/slug"
)

// Offer is the standing sale listing for one token. MinValue is a decimal
// string in the platform's native value unit. When OnlySellTo is set, only
// that address may accept the offer.
type Offer struct {
	Contract   string `json:"contract"`
	TokenId    uint64 `json:"tokenId"`
	ForSale    bool   `json:"forSale"`
	Seller     string `json:"seller"`
	MinValue   string `json:"minValue"`
	OnlySellTo string `json:"onlySellTo"`
}

func (o Offer) Slug() string {
	return CreateTokenSlug(o.TokenId, o.Contract)
}

func CreateTokenSlug(tokenId uint64, contract string) string {
	return slug.Make(fmt.Sprintf("token-%d-%s", tokenId, contract))
}
