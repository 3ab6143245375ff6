package market

import "math/big"

var oneHundred = big.NewInt(100)

func formatAmount(value *big.Int) string {
	if value == nil {
		return "0"
	}

	return value.String()
}

func parseAmount(raw string) *big.Int {
	if raw == "" {
		return new(big.Int)
	}

	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return new(big.Int)
	}

	return value
}

// splitRoyalty divides a payment into the administrator's royalty and the
// seller's proceeds. Division truncates toward zero; the remainder stays with
// the seller, so royalty+proceeds always equals the payment exactly.
func splitRoyalty(payment *big.Int, royaltyPercent uint) (*big.Int, *big.Int) {
	royalty := new(big.Int).Mul(payment, new(big.Int).SetUint64(uint64(royaltyPercent)))
	royalty.Quo(royalty, oneHundred)

	proceeds := new(big.Int).Sub(payment, royalty)

	return royalty, proceeds
}
