package market

import (
	"errors"
	"math/big"
	"sync"

	"go.uber.org/zap"
)

// PaymentSender performs the outbound value transfer when a participant
// withdraws their pending balance. The engine zeroes the balance before
// calling Pay and restores it if Pay fails.
type PaymentSender interface {
	Pay(to string, amount *big.Int) error
}

// LogSender records payouts in the log only. It stands in for a real payment
// rail in local runs.
type LogSender struct{}

func (LogSender) Pay(to string, amount *big.Int) error {
	zap.L().With(zap.String("to", to), zap.String("amount", amount.String())).Info("Market: Payout")

	return nil
}

var ErrPaymentsUnavailable = errors.New("market: payment rail unavailable")

// MemorySender accumulates payouts in memory and can be told to fail, which
// exercises the engine's rollback path.
type MemorySender struct {
	mtx    sync.Mutex
	paid   map[string]*big.Int
	payErr error
}

func NewMemorySender() *MemorySender {
	return &MemorySender{paid: make(map[string]*big.Int)}
}

func (s *MemorySender) Pay(to string, amount *big.Int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.payErr != nil {
		return s.payErr
	}

	if s.paid[to] == nil {
		s.paid[to] = new(big.Int)
	}
	s.paid[to].Add(s.paid[to], amount)

	return nil
}

func (s *MemorySender) FailPayments(err error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.payErr = err
}

func (s *MemorySender) Paid(to string) *big.Int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.paid[to] == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(s.paid[to])
}
