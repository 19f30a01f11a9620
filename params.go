package main

import (
	"github.com/creativechain/ccoin/chaincfg"
)

// activeNetParams is a pointer to the parameters specific to the currently
// active network, set during loadConfig.
var activeNetParams = &mainNetParams

// params is used to group parameters for various networks, such as the
// main network and test networks, together so they can be referenced
// consistently throughout the codebase. An RPC port is added on top of the
// chaincfg.Params the rest of the module shares, since that port is
// specific to this daemon, not to the network.
type params struct {
	*chaincfg.Params
	rpcPort string
}

var mainNetParams = params{
	Params:  &chaincfg.MainNetParams,
	rpcPort: "8334",
}

var regressionNetParams = params{
	Params:  &chaincfg.RegressionNetParams,
	rpcPort: "18334",
}

var testNet3Params = params{
	Params:  &chaincfg.TestNetParams,
	rpcPort: "18334",
}

// simNetParams reuses the regression test network's parameters, including
// its default peer port; it exists only so --simnet selects a distinct RPC
// port for local multi-node test harnesses.
var simNetParams = params{
	Params:  &chaincfg.RegressionNetParams,
	rpcPort: "18556",
}

// netName returns the name used when referring to a bitcoin network: always
// "testnet" for the test network, whatever its registered Params.Name, and
// Params.Name for every other network.
func netName(chainParams *params) string {
	switch chainParams.Params {
	case &chaincfg.TestNetParams:
		return "testnet"
	default:
		return chainParams.Name
	}
}
