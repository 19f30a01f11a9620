package blockchain

import (
	"math/big"

	"github.com/creativechain/ccoin/chainhash"
)

// AbstractBlock is the narrow view of a block CheckProofOfWork needs: just
// enough to decide which proof-of-work limit and hash function apply to
// it. Concrete block types (wire.BlockHeader) implement it.
type AbstractBlock interface {
	HasNewPowVersion() bool
}

// CompactToBig converts a compact representation of a whole number N,
// packed into an unsigned 32-bit number, to a big integer. The
// representation is similar to IEEE754 floating point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa. They are broken out as follows:
//
//   - the most significant 8 bits represent the unsigned base 256 exponent
//   - bit 23 (the 24th bit) represents the sign bit
//   - the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] |  23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// This compact form is only used in bitcoin to encode unsigned 256-bit
// numbers which represent difficulty targets, thus there really is not a
// need for a sign bit, but it is implemented here to fully comply with the
// compact format. This is the fromCompact conversion; toCompact is
// BigToCompact below.
func CompactToBig(compact uint32) *big.Int {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number. So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly. This is equivalent to:
	// N = mantissa * 256^(exponent-3)
	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	// Make it negative if the sign bit is set.
	if isNegative {
		bn = bn.Neg(bn)
	}

	return bn
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number. See CompactToBig for details on the compact
// format. This is the toCompact conversion.
func BigToCompact(n *big.Int) uint32 {
	// No need to do any work if it's zero.
	if n.Sign() == 0 {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes. So, shift the number right or left
	// accordingly. This is equivalent to: mantissa = mantissa / 256^(exponent-3)
	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by 256
	// and increment the exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	// Pack the exponent, sign bit, and mantissa into an unsigned 32-bit
	// int and return it.
	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// CheckProofOfWork ensures the block hash satisfies the proof-of-work
// requirement encoded in bits, and that the target implied by bits itself
// does not exceed the network's proof-of-work limit for the hash version
// the block was mined under.
//
// Earlier revisions of this check computed powLimit and keccakPowLimit
// but never actually compared target against either of them; that
// comparison is what makes this a real limit rather than a dead
// parameter.
func CheckProofOfWork(block AbstractBlock, hash chainhash.Hash, bits uint32, powLimit, keccakPowLimit *big.Int) bool {
	target := CompactToBig(bits)

	limit := powLimit
	if block.HasNewPowVersion() {
		limit = keccakPowLimit
	}

	// The target must be positive and must not exceed the proof-of-work
	// limit imposed by the network for this block's hash version.
	if target.Sign() <= 0 {
		log.Debugf("block target %064x is not positive", target)
		return false
	}
	if target.Cmp(limit) > 0 {
		log.Debugf("block target %064x is higher than max of %064x", target, limit)
		return false
	}

	hashNum := hash.AsBigInt()
	if hashNum.Cmp(target) > 0 {
		log.Debugf("block hash %064x is higher than expected max of %064x", hashNum, target)
		return false
	}
	return true
}

// HasBit reports whether bit is set in version, but only when version is
// signaling through the version-bits mechanism (its top three bits equal
// VersionTopBits). A version that isn't using version-bits signaling never
// has any bit "set" in this sense, regardless of its raw bit pattern.
func HasBit(version int32, bit uint8) bool {
	uv := uint32(version)
	if uv&VersionTopMask != VersionTopBits {
		return false
	}
	return uv&(uint32(1)<<bit) != 0
}
