package repository

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ZilDuck/nft-marketplace/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func TestLedgerRepository_ZeroByDefault(t *testing.T) {
	st := newTestStore(t)
	repo := NewLedgerRepository(st)

	balance, err := repo.GetBalance("0xalice")
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Sign())
}

func TestLedgerRepository_CreditAccumulates(t *testing.T) {
	st := newTestStore(t)
	repo := NewLedgerRepository(st)

	err := st.Update(func(tx *bolt.Tx) error {
		if err := repo.Credit(tx, "0xalice", big.NewInt(100)); err != nil {
			return err
		}
		return repo.Credit(tx, "0xalice", big.NewInt(50))
	})
	require.NoError(t, err)

	balance, err := repo.GetBalance("0xalice")
	require.NoError(t, err)
	assert.Equal(t, "150", balance.String())
}

func TestLedgerRepository_CreditsInSameTxObserveEachOther(t *testing.T) {
	st := newTestStore(t)
	repo := NewLedgerRepository(st)

	// Royalty and proceeds to the same address in one settlement must not
	// overwrite each other.
	err := st.Update(func(tx *bolt.Tx) error {
		if err := repo.Credit(tx, "0xadmin", big.NewInt(100)); err != nil {
			return err
		}
		return repo.Credit(tx, "0xadmin", big.NewInt(900))
	})
	require.NoError(t, err)

	balance, err := repo.GetBalance("0xadmin")
	require.NoError(t, err)
	assert.Equal(t, "1000", balance.String())
}

func TestLedgerRepository_DebitCannotGoNegative(t *testing.T) {
	st := newTestStore(t)
	repo := NewLedgerRepository(st)

	err := st.Update(func(tx *bolt.Tx) error {
		return repo.Debit(tx, "0xalice", big.NewInt(1))
	})
	assert.ErrorIs(t, err, ErrNegativeBalance)

	require.NoError(t, st.Update(func(tx *bolt.Tx) error {
		return repo.Credit(tx, "0xalice", big.NewInt(100))
	}))

	err = st.Update(func(tx *bolt.Tx) error {
		return repo.Debit(tx, "0xalice", big.NewInt(101))
	})
	assert.ErrorIs(t, err, ErrNegativeBalance)

	require.NoError(t, st.Update(func(tx *bolt.Tx) error {
		return repo.Debit(tx, "0xalice", big.NewInt(100))
	}))

	balance, err := repo.GetBalance("0xalice")
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Sign())
}

func TestLedgerRepository_FailedTxLeavesNoTrace(t *testing.T) {
	st := newTestStore(t)
	repo := NewLedgerRepository(st)

	// The credit commits or the debit fails the whole transaction; a partial
	// write must never survive.
	err := st.Update(func(tx *bolt.Tx) error {
		if err := repo.Credit(tx, "0xalice", big.NewInt(100)); err != nil {
			return err
		}
		return repo.Debit(tx, "0xbob", big.NewInt(1))
	})
	assert.ErrorIs(t, err, ErrNegativeBalance)

	balance, err := repo.GetBalance("0xalice")
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Sign())
}

func TestLedgerRepository_SetBalance(t *testing.T) {
	st := newTestStore(t)
	repo := NewLedgerRepository(st)

	require.NoError(t, st.Update(func(tx *bolt.Tx) error {
		return repo.SetBalance(tx, "0xalice", big.NewInt(42))
	}))

	balance, err := repo.GetBalance("0xalice")
	require.NoError(t, err)
	assert.Equal(t, "42", balance.String())
}
