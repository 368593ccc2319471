package exchange

import (
	"fmt"

	"horsemanager/internal/domain"
)

// checkFunds enforces the only pre-trade rule: a purchase needs a balance of
// at least its effective price. Sales are always allowed.
func checkFunds(dir domain.Direction, balance, price int) error {
	if dir == domain.Buying && balance < price {
		return fmt.Errorf("%w: balance %d, price %d", ErrInsufficientFunds, balance, price)
	}
	return nil
}
