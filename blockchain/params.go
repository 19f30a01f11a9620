// Package blockchain implements consensus-critical arithmetic: compact
// target encoding, proof-of-work verification, the block subsidy
// schedule, and version-bits signaling.
package blockchain

import "math/big"

// CCoin is the number of satoshis in one coin.
const CCoin = 100000000

// MaxMoney is the maximum transaction amount allowed in satoshis.
const MaxMoney = 115000000 * CCoin

// Block and script size limits.
const (
	MaxBlockSize         = 4000000
	MaxRawBlockSize      = 4000000
	MaxBlockWeight       = 4000000
	MaxBlockSigOps       = 20000
	MaxBlockSigOpsCost   = 80000
	WitnessScaleFactor   = 4
	MaxScriptSize        = 10000
	MaxScriptStackSize   = 1000
	MaxScriptPushSize    = 520
	MaxScriptOps         = 201
	MaxMultisigPubKeys   = 20
	Bip16Time            = 1333238400
	CoinbaseMaturity     = 8
	LockTimeThreshold    = 500000000
	SequenceDisableFlag  = 1 << 31
	SequenceTypeFlag     = 1 << 22
	SequenceGranularity  = 9
	SequenceMask         = 0x0000ffff
)

// VersionTopBits and VersionTopMask implement the version-bits soft-fork
// signaling scheme: a block version whose top three bits equal
// VersionTopBits is advertising deployment bits in its lower bits.
const (
	VersionTopBits uint32 = 0x20000000
	VersionTopMask uint32 = 0xe0000000
)

// bigOne is 1 represented as a big.Int, shared so callers building
// proof-of-work limits need not rebuild it.
var bigOne = big.NewInt(1)
