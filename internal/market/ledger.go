package market

import (
	"fmt"
	"math/big"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Withdraw pays out the caller's full pending balance. The balance is zeroed
// and committed before the outbound payment is attempted, so a re-entrant
// caller finds nothing left to withdraw; a failed payment restores the
// balance and reports the failure.
func (m *market) Withdraw(caller string) (*big.Int, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	balance, err := m.ledger.GetBalance(caller)
	if err != nil {
		return nil, err
	}
	if balance.Sign() == 0 {
		return nil, ErrNothingToWithdraw
	}

	err = m.store.Update(func(tx *bolt.Tx) error {
		return m.ledger.SetBalance(tx, caller, new(big.Int))
	})
	if err != nil {
		return nil, err
	}

	if err := m.payments.Pay(caller, balance); err != nil {
		restoreErr := m.store.Update(func(tx *bolt.Tx) error {
			return m.ledger.SetBalance(tx, caller, balance)
		})
		if restoreErr != nil {
			zap.L().With(zap.Error(restoreErr), zap.String("address", caller)).
				Error("Market: Failed to restore balance after payout failure")
		}
		return nil, fmt.Errorf("%w: %v", ErrPayoutFailed, err)
	}

	zap.L().With(zap.String("address", caller), zap.String("amount", balance.String())).Info("Market: Withdrawal")

	return balance, nil
}
