package precision

import "errors"

// ErrDivisionByZero is returned by Engine.Quo when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")
