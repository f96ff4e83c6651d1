package validators

// Messages reused across entities. Entity-specific rules phrase their own.
const (
	msgRequired     = "is required"
	msgInvalidEmail = "must be a valid email address"
	msgUnsupported  = "unsupported type for validation"
)
