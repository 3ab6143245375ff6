package market

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ZilDuck/nft-marketplace/internal/registry"
	"github.com/ZilDuck/nft-marketplace/internal/repository"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	"github.com/stretchr/testify/require"
)

const (
	operator       = "marketplace"
	singleContract = "0xaaaa721"
	multiContract  = "0xbbbb1155"

	admin = "0xadmin"
	alice = "0xalice"
	bob   = "0xbob"
	carol = "0xcarol"
)

type harness struct {
	market   Market
	single   *registry.MemorySingleOwner
	multi    *registry.MemoryQuantityHolder
	payments *MemorySender
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "market.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	resolver := registry.NewMemoryResolver()
	single := registry.NewMemorySingleOwner(admin)
	multi := registry.NewMemoryQuantityHolder(admin)
	resolver.Add(singleContract, single)
	resolver.Add(multiContract, multi)

	payments := NewMemorySender()

	m := NewMarket(
		st,
		repository.NewCollectionRepository(st),
		repository.NewOfferRepository(st),
		repository.NewBidRepository(st),
		repository.NewLedgerRepository(st),
		resolver,
		payments,
		operator,
	)

	return &harness{market: m, single: single, multi: multi, payments: payments}
}

func (h *harness) enableSingle(t *testing.T, royaltyPercent uint) {
	t.Helper()
	require.NoError(t, h.market.SetCollection(admin, singleContract, false, royaltyPercent, "ipfs://single"))
}

func (h *harness) enableMulti(t *testing.T, royaltyPercent uint) {
	t.Helper()
	require.NoError(t, h.market.SetCollection(admin, multiContract, true, royaltyPercent, "ipfs://multi"))
}

// listToken mints, approves and offers a token in the single-owner registry.
func (h *harness) listToken(t *testing.T, owner string, tokenId uint64, minValue int64) {
	t.Helper()
	h.single.Mint(tokenId, owner)
	h.single.Approve(owner, operator, true)
	require.NoError(t, h.market.OfferForSale(owner, singleContract, tokenId, amt(minValue), ""))
}

func amt(v int64) *big.Int {
	return big.NewInt(v)
}

func (h *harness) balance(t *testing.T, address string) *big.Int {
	t.Helper()
	balance, err := h.market.PendingBalance(address)
	require.NoError(t, err)
	return balance
}
