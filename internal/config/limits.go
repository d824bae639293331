package config

const (
	// MaxRawTextLength caps the strategic input sent to the model. Inputs
	// beyond this are rejected before any network call.
	MaxRawTextLength = 20000

	// MaxStyleReferenceLength caps the optional tone/style reference text.
	MaxStyleReferenceLength = 8000

	// MaxEmailLength matches the usuarios column width.
	MaxEmailLength = 255

	// MinPasswordLength is the minimum accepted password size at registration.
	MinPasswordLength = 6

	// MaxHistoryEntries caps the saved-project history. Oldest entries are
	// dropped when a new snapshot is added.
	MaxHistoryEntries = 10

	// BcryptCost is the password hashing cost.
	BcryptCost = 10

	// TokenTTLDays is the JWT lifetime.
	TokenTTLDays = 7
)
