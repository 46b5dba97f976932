package store

// Error message constants for the store domain.
const (
	ErrMsgLineNoProduct = "Order line %d has no product"
)
