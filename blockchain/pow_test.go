package blockchain

import (
	"math/big"
	"testing"

	"github.com/creativechain/ccoin/chainhash"
)

// fakeBlock is a minimal AbstractBlock stand-in for CheckProofOfWork tests.
type fakeBlock struct {
	newPow bool
}

func (b fakeBlock) HasNewPowVersion() bool { return b.newPow }

func TestCompactToBigRoundTrip(t *testing.T) {
	tests := []uint32{
		0x1d00ffff, // mainnet genesis-style target
		0x1b0404cb,
		0x207fffff, // regtest-style, very loose target
		0,
	}

	for _, compact := range tests {
		n := CompactToBig(compact)
		got := BigToCompact(n)
		if compact == 0 {
			if got != 0 {
				t.Errorf("BigToCompact(CompactToBig(0)) = %#08x, want 0", got)
			}
			continue
		}
		if got != compact {
			t.Errorf("round trip for %#08x produced %#08x (n=%s)", compact, got, n.String())
		}
	}
}

func TestCompactToBigKnownValue(t *testing.T) {
	// 0x1d00ffff decodes to 0x00ffff * 256^(0x1d-3) = 0xffff0000000000000000000000000000000000000000000000000000
	got := CompactToBig(0x1d00ffff)
	want := new(big.Int).Lsh(big.NewInt(0x00ffff), 8*(0x1d-3))
	if got.Cmp(want) != 0 {
		t.Errorf("CompactToBig(0x1d00ffff) = %s, want %s", got, want)
	}
}

func TestCheckProofOfWorkTargetAboveLimit(t *testing.T) {
	// A target that decodes to something larger than powLimit must be
	// rejected regardless of the hash.
	powLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 32), bigOne)
	keccakLimit := powLimit

	looseBits := BigToCompact(new(big.Int).Lsh(bigOne, 64)) // way above powLimit
	var hash chainhash.Hash                                 // all-zero hash, would satisfy any positive target

	ok := CheckProofOfWork(fakeBlock{}, hash, looseBits, powLimit, keccakLimit)
	if ok {
		t.Fatal("CheckProofOfWork accepted a target exceeding powLimit")
	}
}

func TestCheckProofOfWorkAcceptsSatisfyingHash(t *testing.T) {
	powLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
	keccakLimit := powLimit

	bits := BigToCompact(powLimit)
	var hash chainhash.Hash // zero hash trivially satisfies any positive target

	if !CheckProofOfWork(fakeBlock{}, hash, bits, powLimit, keccakLimit) {
		t.Fatal("CheckProofOfWork rejected a hash well below target")
	}
}

func TestCheckProofOfWorkRejectsInsufficientHash(t *testing.T) {
	powLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
	keccakLimit := powLimit

	// A target of 1 is satisfied only by a hash whose value is 0 or 1.
	bits := BigToCompact(big.NewInt(1))
	hash := chainhash.HashH([]byte("not a winning nonce"))

	if CheckProofOfWork(fakeBlock{}, hash, bits, powLimit, keccakLimit) {
		t.Fatal("CheckProofOfWork accepted a hash that does not satisfy the target")
	}
}

func TestCheckProofOfWorkSelectsLimitByVersion(t *testing.T) {
	powLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 32), bigOne)
	keccakLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	// A target that fits under keccakLimit but not under the much
	// tighter legacy powLimit must be accepted for a new-pow-version
	// block and rejected for a legacy one.
	bits := BigToCompact(new(big.Int).Lsh(bigOne, 64))
	var hash chainhash.Hash

	if CheckProofOfWork(fakeBlock{newPow: false}, hash, bits, powLimit, keccakLimit) {
		t.Fatal("legacy block should be checked against powLimit, not keccakPowLimit")
	}
	if !CheckProofOfWork(fakeBlock{newPow: true}, hash, bits, powLimit, keccakLimit) {
		t.Fatal("new-pow-version block should be checked against keccakPowLimit")
	}
}

func TestHasBit(t *testing.T) {
	tests := []struct {
		name    string
		version int32
		bit     uint8
		want    bool
	}{
		{"not signaling", 0x00000001, 0, false},
		{"signaling, bit 0 set", int32(VersionTopBits | 0x1), 0, true},
		{"signaling, bit 0 clear", int32(VersionTopBits | 0x2), 0, false},
		{"signaling, bit 1 set", int32(VersionTopBits | 0x2), 1, true},
		{"wrong top bits", 0x10000001, 0, false},
	}

	for _, tc := range tests {
		if got := HasBit(tc.version, tc.bit); got != tc.want {
			t.Errorf("%s: HasBit(%#x, %d) = %v, want %v", tc.name, tc.version, tc.bit, got, tc.want)
		}
	}
}
