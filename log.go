package main

import (
	"github.com/btcsuite/btclog"

	"github.com/creativechain/ccoin/blockchain"
	"github.com/creativechain/ccoin/database"
	"github.com/creativechain/ccoin/internal/ccoinlog"
	"github.com/creativechain/ccoin/netsync"
)

// Loggers for the subsystems this daemon owns directly. Collaborator
// packages (blockchain, database, netsync) get their loggers wired below,
// through the UseLogger hook each of them exposes.
var (
	btcdLog = ccoinlog.NewSubsystemLogger("CCOIND")
	srvrLog = ccoinlog.NewSubsystemLogger("SRVR")
	syncLog = ccoinlog.NewSubsystemLogger("SYNC")
	bcdbLog = ccoinlog.NewSubsystemLogger("BCDB")
	chanLog = ccoinlog.NewSubsystemLogger("CHAN")
)

// useLoggers wires every collaborator package's package-level logger to
// this daemon's logging backend. It must run before any of them are
// exercised.
func useLoggers() {
	blockchain.UseLogger(chanLog)
	database.UseLogger(btclog.Logger(bcdbLog))
	netsync.UseLogger(syncLog)
}
