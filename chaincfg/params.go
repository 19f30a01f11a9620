// Package chaincfg defines the network parameters for the coin's standard
// networks (main, testnet, regtest) and supports registering parameters
// for non-standard networks.
package chaincfg

import (
	"errors"
	"math/big"
	"strings"

	"github.com/creativechain/ccoin/wire"
)

// Params holds the immutable per-network descriptor: the wire magic, the
// proof-of-work limits for each of the two hashing schemes, and the
// bootstrap seed list.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PowLimit is the highest proof-of-work target permitted for blocks
	// mined under the legacy double-SHA-256 scheme.
	PowLimit *big.Int

	// KeccakPowLimit is the highest proof-of-work target permitted for
	// blocks mined under the newer Keccak-256 scheme.
	KeccakPowLimit *big.Int

	// DNSSeeds lists the bootstrap peer addresses for this network. See
	// Seeds.
	DNSSeeds []string

	// RelayNonStdTxs indicates whether the mempool policy layer (outside
	// this package) should relay non-standard transactions on this
	// network. Carried as descriptor metadata only — this package does
	// not interpret it.
	RelayNonStdTxs bool
}

// Seeds returns an immutable copy of the bootstrap peer addresses for
// this network.
func (p *Params) Seeds() []string {
	out := make([]string, len(p.DNSSeeds))
	copy(out, p.DNSSeeds)
	return out
}

// bigOne is 1 represented as a big.Int, to avoid repeated allocation when
// building the PoW limits below.
var bigOne = big.NewInt(1)

// mainPowLimit is the proof-of-work limit for MainNetParams under the
// legacy double-SHA-256 scheme: 2^236 - 1.
var mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

// mainKeccakPowLimit is the proof-of-work limit for MainNetParams under
// the Keccak-256 scheme: 2^224 - 1.
var mainKeccakPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

// testPowLimit and testKeccakPowLimit are deliberately much looser than
// their mainnet counterparts, matching the usual test-network convention
// of making proof-of-work trivial to satisfy.
var testPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 251), bigOne)
var testKeccakPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 251), bigOne)

// regressionPowLimit is the proof-of-work limit for RegressionNetParams:
// 2^255 - 1, the loosest limit representable without a sign bit collision.
var regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:           "main",
	Net:            wire.MainNet,
	DefaultPort:    "8333",
	PowLimit:       mainPowLimit,
	KeccakPowLimit: mainKeccakPowLimit,
	DNSSeeds:       mainNetSeeds,
	RelayNonStdTxs: false,
}

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:           "testnet",
	Net:            wire.TestNet,
	DefaultPort:    "18333",
	PowLimit:       testPowLimit,
	KeccakPowLimit: testKeccakPowLimit,
	DNSSeeds:       testNetSeeds,
	RelayNonStdTxs: true,
}

// RegressionNetParams defines the network parameters for the regression
// test network, which has no seeds: peers are expected to be configured
// explicitly.
var RegressionNetParams = Params{
	Name:           "regtest",
	Net:            wire.RegTest,
	DefaultPort:    "18444",
	PowLimit:       regressionPowLimit,
	KeccakPowLimit: regressionPowLimit,
	DNSSeeds:       nil,
	RelayNonStdTxs: true,
}

// ErrDuplicatedNet describes an error where the parameters for a network
// could not be registered because the network magic is already in use by
// a standard or previously-registered network.
var ErrDuplicatedNet = errors.New("duplicated network")

// ErrUnknownNetwork is returned by ParamsByName for a name that does not
// match a standard or registered network.
var ErrUnknownNetwork = errors.New("unknown network")

var (
	registeredNets = map[wire.BitcoinNet]*Params{
		wire.MainNet: &MainNetParams,
		wire.TestNet: &TestNetParams,
		wire.RegTest: &RegressionNetParams,
	}
	registeredNetsByName = map[string]*Params{
		MainNetParams.Name:       &MainNetParams,
		TestNetParams.Name:       &TestNetParams,
		RegressionNetParams.Name: &RegressionNetParams,
	}
)

// Register registers the network parameters for a network. This may error
// with ErrDuplicatedNet if the network is already registered (either due
// to a previous Register call, or the network being one of the standard
// networks above).
//
// Network parameters should be registered by a main package as early as
// possible. Library packages may then look up networks or network
// parameters based on inputs and work regardless of whether the network is
// one of the standard ones.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicatedNet
	}
	registeredNets[params.Net] = params
	registeredNetsByName[strings.ToLower(params.Name)] = params
	return nil
}

// ParamsByName resolves a network by its human-readable name ("main",
// "testnet", "regtest", or any name previously passed to Register). It
// is safe to call concurrently
// with itself, but not with a concurrent Register call — by convention,
// all Register calls happen during start-up before any ParamsByName
// lookups occur.
func ParamsByName(name string) (*Params, error) {
	p, ok := registeredNetsByName[strings.ToLower(name)]
	if !ok {
		return nil, ErrUnknownNetwork
	}
	return p, nil
}
