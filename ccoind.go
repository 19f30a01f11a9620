package main

import (
	"fmt"
	"net"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/creativechain/ccoin/database"
	"github.com/creativechain/ccoin/internal/ccoinlog"
)

var cfg *config

// winServiceMain is only invoked on Windows. This build has no Windows
// service support: it always reports that ccoind is not running as a
// service.
func winServiceMain() (bool, error) {
	return false, nil
}

// ccoindMain is the real main function for ccoind. It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called, which would otherwise be the only way to signal an unsuccessful
// exit from main itself. When the optional serverChan parameter is non-nil,
// the server is sent on it once it has been started.
func ccoindMain(serverChan chan<- *server) error {
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg
	defer ccoinlog.CloseRotator()

	useLoggers()

	interrupt := interruptListener()
	defer btcdLog.Info("Shutdown complete")

	btcdLog.Infof("Version %s", version())
	btcdLog.Infof("Active network: %s (rpc port %s)", netName(cfg.activeNet), cfg.activeNet.rpcPort)

	if cfg.Profile != "" {
		go func() {
			listenAddr := net.JoinHostPort("", cfg.Profile)
			btcdLog.Infof("Profile server listening on %s", listenAddr)
		}()
	}

	if interruptRequested(interrupt) {
		return nil
	}

	db, err := loadBlockDB()
	if err != nil {
		btcdLog.Errorf("%v", err)
		return err
	}
	defer func() {
		btcdLog.Info("Gracefully shutting down the database...")
		db.Close()
	}()

	if interruptRequested(interrupt) {
		return nil
	}

	if cfg.DropAddrIndex || cfg.DropTxIndex || cfg.DropCfIndex {
		btcdLog.Info("Index drop requested; no indexes are maintained by this build")
		return nil
	}

	srv, err := newServer(cfg.Listeners, db, activeNetParams.Params, interrupt)
	if err != nil {
		btcdLog.Errorf("Failed to start server on %v: %v", cfg.Listeners, err)
		return err
	}
	defer func() {
		btcdLog.Infof("Gracefully shutting down the server...")
		srv.Stop()
		srv.WaitForShutdown()
	}()

	srv.Start()
	if serverChan != nil {
		serverChan <- srv
	}

	<-interrupt
	return nil
}

// loadBlockDB opens (creating if necessary) the block database for the
// active network. It goes through the database.Open/Create registry
// rather than constructing a backend directly, so swapping in a real
// storage driver is a one-line change at this call site, not a rewrite of
// this function.
func loadBlockDB() (database.DB, error) {
	dbPath := cfg.DataDir
	db, err := database.Open("stub", dbPath)
	if err == nil {
		return db, nil
	}
	return database.Create("stub", dbPath)
}

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	debug.SetGCPercent(10)

	if err := SetLimits(); err != nil {
		fmt.Printf("Failed to set limits: %v\n", err)
		os.Exit(1)
	}

	if runtime.GOOS == "windows" {
		isService, err := winServiceMain()
		if err != nil {
			fmt.Printf("Failed to start windows service: %v\n", err)
		}
		if isService {
			os.Exit(0)
		}
	}

	if err := ccoindMain(nil); err != nil {
		os.Exit(1)
	}
}
