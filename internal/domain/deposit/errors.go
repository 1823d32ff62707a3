package deposit

import "errors"

var (
	ErrDepositNotFound = errors.New("deposit not found")
)
