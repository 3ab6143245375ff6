package repository

import (
	"errors"
	"math/big"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	bolt "go.etcd.io/bbolt"
)

var (
	ErrNegativeBalance = errors.New("ledger balance cannot go negative")
	ErrCorruptBalance  = errors.New("ledger balance is not a valid integer")
)

// LedgerRepository holds the pull-payment balances. Credits and debits run
// inside the caller's transaction so that two credits to the same address in
// one operation (seller doubling as administrator) observe each other.
type LedgerRepository interface {
	GetBalance(address string) (*big.Int, error)
	Credit(tx *bolt.Tx, address string, amount *big.Int) error
	Debit(tx *bolt.Tx, address string, amount *big.Int) error
	SetBalance(tx *bolt.Tx, address string, amount *big.Int) error
}

type ledgerRepository struct {
	store *store.Store
}

func NewLedgerRepository(store *store.Store) LedgerRepository {
	return ledgerRepository{store}
}

func (r ledgerRepository) GetBalance(address string) (*big.Int, error) {
	var balance entity.Balance

	found, err := r.store.Get(store.LedgerBucket, []byte(entity.CreateBalanceSlug(address)), &balance)
	if err != nil {
		return nil, err
	}
	if !found {
		return new(big.Int), nil
	}

	return parsePending(balance.Pending)
}

func (r ledgerRepository) Credit(tx *bolt.Tx, address string, amount *big.Int) error {
	current, err := balanceTx(tx, address)
	if err != nil {
		return err
	}

	return r.SetBalance(tx, address, new(big.Int).Add(current, amount))
}

func (r ledgerRepository) Debit(tx *bolt.Tx, address string, amount *big.Int) error {
	current, err := balanceTx(tx, address)
	if err != nil {
		return err
	}

	next := new(big.Int).Sub(current, amount)
	if next.Sign() < 0 {
		return ErrNegativeBalance
	}

	return r.SetBalance(tx, address, next)
}

func (r ledgerRepository) SetBalance(tx *bolt.Tx, address string, amount *big.Int) error {
	balance := entity.Balance{Address: address, Pending: amount.String()}

	return store.Put(tx, store.LedgerBucket, []byte(balance.Slug()), balance)
}

func balanceTx(tx *bolt.Tx, address string) (*big.Int, error) {
	var balance entity.Balance

	found, err := store.GetTx(tx, store.LedgerBucket, []byte(entity.CreateBalanceSlug(address)), &balance)
	if err != nil {
		return nil, err
	}
	if !found {
		return new(big.Int), nil
	}

	return parsePending(balance.Pending)
}

func parsePending(pending string) (*big.Int, error) {
	if pending == "" {
		return new(big.Int), nil
	}

	value, ok := new(big.Int).SetString(pending, 10)
	if !ok || value.Sign() < 0 {
		return nil, ErrCorruptBalance
	}

	return value, nil
}
