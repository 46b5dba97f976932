package product

// Error message constants for the product domain.
const (
	ErrMsgNameRequired          = "Product name is required"
	ErrMsgPriceNegative         = "Price cannot be negative"
	ErrMsgQuantityNegative      = "Quantity can't be negative"
	ErrMsgBuyQuantityPositive   = "Quantity must be positive"
	ErrMsgInsufficientStock     = "Not enough %s in stock: available %d, requested %d"
	ErrMsgUnlimitedStock        = "%s has unlimited stock"
	ErrMsgActivateEmpty         = "Cannot activate %s without stock"
	ErrMsgUnlimitedAlwaysActive = "%s has unlimited stock and is always active"
)
