package entity

import (
	"fmt"
	"github.com/gosimple/slug"
)

// Collection is the marketplace configuration for a single asset registry
// contract. A disabled collection is stored fully zeroed; enabling it again
// always starts from the zero state.
type Collection struct {
	Contract       string `json:"contract"`
	Active         bool   `json:"active"`
	QuantityModel  bool   `json:"quantityModel"`
	RoyaltyPercent uint   `json:"royaltyPercent"`
	MetadataUri    string `json:"metadataUri"`
}

func (c Collection) Slug() string {
	return CreateCollectionSlug(c.Contract)
}

func CreateCollectionSlug(contract string) string {
	return slug.Make(fmt.Sprintf("collection-%s", contract))
}
