package commerce

import "github.com/shopspring/decimal"

// RequireName checks that a display name is non-empty.
func RequireName(name, errMsg string) *CommandError {
	if name == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequirePositive checks that a value is greater than zero.
func RequirePositive(value int, errMsg string) *CommandError {
	if value <= 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNonNegative checks that a value is zero or greater.
func RequireNonNegative(value int, errMsg string) *CommandError {
	if value < 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNonNegativeAmount checks that a money amount is zero or greater.
func RequireNonNegativeAmount(amount decimal.Decimal, errMsg string) *CommandError {
	if amount.IsNegative() {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequirePercent checks that a percentage lies within 0-100.
func RequirePercent(percent decimal.Decimal, errMsg string) *CommandError {
	if percent.IsNegative() || percent.GreaterThan(Hundred) {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// FirstError returns the first non-nil CommandError, or nil.
func FirstError(errs ...*CommandError) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
