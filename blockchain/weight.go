package blockchain

// MaxBlockBaseSize is the maximum number of bytes within a block which can
// be allocated to non-witness data. WitnessScaleFactor itself is defined
// in params.go alongside the rest of the consensus size limits.
const MaxBlockBaseSize = 1000000