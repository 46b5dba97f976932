package promotion

// Error message constants for the promotion domain.
const (
	ErrMsgNameRequired = "Promotion name is required"
	ErrMsgUnknownKind  = "Unknown promotion kind %q"
	ErrMsgPercentRange = "Percentage must be 0-100"
)
