package entity

import (
	"fmt"
	"github.com/gosimple/slug"
	"github.com/nu7hatch/gouuid"
)

type SaleKind string

const (
	SaleViaOffer SaleKind = "offer"
	SaleViaBid   SaleKind = "bid"
)

// Sale records one settlement. Cost is the full payment, Royalty the cut
// credited to the registry administrator and Proceeds the remainder credited
// to the seller.
type Sale struct {
	Id       string   `json:"id"`
	Contract string   `json:"contract"`
	TokenId  uint64   `json:"tokenId"`
	Buyer    string   `json:"buyer"`
	Seller   string   `json:"seller"`
	Cost     string   `json:"cost"`
	Royalty  string   `json:"royalty"`
	Proceeds string   `json:"proceeds"`
	Kind     SaleKind `json:"kind"`
}

func NewSale(contract string, tokenId uint64, buyer, seller, cost, royalty, proceeds string, kind SaleKind) Sale {
	u, _ := uuid.NewV4()

	return Sale{
		Id:       u.String(),
		Contract: contract,
		TokenId:  tokenId,
		Buyer:    buyer,
		Seller:   seller,
		Cost:     cost,
		Royalty:  royalty,
		Proceeds: proceeds,
		Kind:     kind,
	}
}

func (s Sale) Slug() string {
	return slug.Make(fmt.Sprintf("sale-%s", s.Id))
}
