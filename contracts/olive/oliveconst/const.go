// Package oliveconst contains constants of the Olive contract shared with
// off-chain tools.
package oliveconst

// Storage key prefixes.
const (
	// StatsPrefix is followed by a symbol code and stores the supply record.
	StatsPrefix = 's'
	// AccountPrefix is followed by an owner script hash and a symbol code and
	// stores the balance record.
	AccountPrefix = 'a'
	// PersonPrefix is followed by an owner script hash and a symbol code and
	// stores the reputation record.
	PersonPrefix = 'p'
)

// Transfer memo commands.
const (
	PopCommand     = "--pop"
	EndorseCommand = "--endorse"
	DrainCommand   = "--drain"
)

const (
	// DefaultProofOfPersonhood is assigned to new persons and means that no
	// proof is set. It cannot be set by account owners.
	DefaultProofOfPersonhood = "[DEFAULT]"

	// MaxMemoLength is the maximum length of transfer memos and
	// proof-of-personhood values in bytes.
	MaxMemoLength = 256

	// MaxPastClaimDays is the number of past days income can be accumulated
	// for. Older income is forfeited.
	MaxPastClaimDays = 360

	// EndorseMinimumScore is the score an account needs to endorse or drain
	// others, in whole currency units.
	EndorseMinimumScore = 10

	// FirstEndorsementFee is deducted from the score granted by the first
	// non-privileged endorsement of an account, in whole currency units.
	FirstEndorsementFee = 1

	// MaxScore and MinScore bound reputation scores.
	MaxScore = 2147483647
	MinScore = -2147483648

	// MaxAmount bounds absolute values of amounts.
	MaxAmount = 1<<62 - 1

	// MaxPrecision is the maximum number of symbol decimals.
	MaxPrecision = 18

	// MaxSymbolCodeLength is the maximum length of a symbol code.
	MaxSymbolCodeLength = 7

	// MillisecondsPerDay converts block timestamps into day numbers.
	MillisecondsPerDay = 24 * 3600 * 1000
)
