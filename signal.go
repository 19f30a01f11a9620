package main

import (
	"os"
	"os/signal"
	"syscall"
)

// interruptSignals are the OS signals ccoind treats as a request for a
// graceful shutdown.
var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// interruptListener returns a channel that is closed once one of
// interruptSignals is received. A second signal after that forces an
// immediate, non-graceful exit, in case a shutdown hangs.
func interruptListener() <-chan struct{} {
	interruptChannel := make(chan os.Signal, 1)
	signal.Notify(interruptChannel, interruptSignals...)

	quit := make(chan struct{})
	go func() {
		sig := <-interruptChannel
		btcdLog.Infof("Received signal (%s). Shutting down...", sig)
		close(quit)

		sig = <-interruptChannel
		btcdLog.Infof("Received signal (%s) while shutting down. Exiting immediately.", sig)
		os.Exit(1)
	}()

	return quit
}

// interruptRequested returns true when the channel returned by
// interruptListener has been closed.
func interruptRequested(interrupted <-chan struct{}) bool {
	select {
	case <-interrupted:
		return true
	default:
	}
	return false
}
