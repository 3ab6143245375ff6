package registry

import "errors"

var (
	ErrRegistryNotFound = errors.New("registry: contract not found")
	ErrWrongModel       = errors.New("registry: contract does not support the required ownership model")
	ErrUnknownToken     = errors.New("registry: unknown token")
	ErrTransferDenied   = errors.New("registry: transfer denied")
)

// Client is the capability contract every asset registry must provide to the
// marketplace. The marketplace never caches answers: administrators, ownership
// and approvals are queried live on every operation that depends on them.
type Client interface {
	CurrentAdministrator() (string, error)
	IsApprovedForTransfer(owner string, operator string) (bool, error)
}

// SingleOwner is the view onto registries where every token has exactly one
// owner at a time.
type SingleOwner interface {
	Client

	OwnerOf(tokenId uint64) (string, error)
	Transfer(from string, to string, tokenId uint64) error
}

// QuantityHolder is the view onto registries that issue per-holder quantities
// of each token id.
type QuantityHolder interface {
	Client

	BalanceOf(holder string, tokenId uint64) (uint64, error)
	TransferQuantity(from string, to string, tokenId uint64, quantity uint64) error
}

// Resolver yields the registry client for a contract address. Which of the
// two ownership views the marketplace asks for is decided by the collection's
// stored model tag, never by inspecting the client.
type Resolver interface {
	Registry(contract string) (Client, error)
}
