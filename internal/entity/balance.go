package entity

import (
	"fmt"
	"github.com/gosimple/slug"
)

// Balance is the withdrawable credit the marketplace owes to one address.
type Balance struct {
	Address string `json:"address"`
	Pending string `json:"pending"`
}

func (b Balance) Slug() string {
	return CreateBalanceSlug(b.Address)
}

func CreateBalanceSlug(address string) string {
	return slug.Make(fmt.Sprintf("balance-%s", address))
}
