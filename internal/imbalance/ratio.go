package imbalance

import (
	"fmt"
	"math/big"
)

// Ratio derives the signed imbalance ratio from two raw token balances,
// normalizing each by its decimals. The result is (v0 - v1) / (v0 + v1):
// +1 when token0 holds all the value, -1 when token1 does, 0 when even.
func Ratio(balance0, balance1 *big.Int, decimals0, decimals1 uint8) (float64, error) {
	if balance0 == nil || balance1 == nil {
		return 0, fmt.Errorf("balances are required")
	}
	if balance0.Sign() < 0 || balance1.Sign() < 0 {
		return 0, fmt.Errorf("balances must be non-negative")
	}

	v0 := normalize(balance0, decimals0)
	v1 := normalize(balance1, decimals1)

	sum := new(big.Rat).Add(v0, v1)
	if sum.Sign() == 0 {
		return 0, fmt.Errorf("both balances are zero")
	}

	diff := new(big.Rat).Sub(v0, v1)
	ratio, _ := new(big.Rat).Quo(diff, sum).Float64()
	return ratio, nil
}

func normalize(value *big.Int, decimals uint8) *big.Rat {
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Rat).SetFrac(value, denom)
}
