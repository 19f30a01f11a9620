package main

import (
	"errors"
	"net"
	"sync"

	"github.com/creativechain/ccoin/chaincfg"
	"github.com/creativechain/ccoin/database"
	"github.com/creativechain/ccoin/netsync"
	"github.com/creativechain/ccoin/wire"
)

// server is the daemon's P2P listener. For every accepted connection it
// owns one netsync.Parser, which turns that connection's byte stream into
// decoded wire.Message values.
type server struct {
	db          database.DB
	chainParams *chaincfg.Params
	listeners   []net.Listener

	wg       sync.WaitGroup
	quit     chan struct{}
	quitOnce sync.Once
}

// newServer creates a new server configured to listen on addr for each
// listen address in listeners.
func newServer(listeners []string, db database.DB, chainParams *chaincfg.Params, interrupt <-chan struct{}) (*server, error) {
	s := &server{
		db:          db,
		chainParams: chainParams,
		quit:        make(chan struct{}),
	}

	if len(listeners) == 0 {
		listeners = []string{net.JoinHostPort("", chainParams.DefaultPort)}
	}

	for _, addr := range listeners {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			srvrLog.Errorf("Can't listen on %s: %v", addr, err)
			continue
		}
		s.listeners = append(s.listeners, ln)
	}

	go func() {
		select {
		case <-interrupt:
			s.Stop()
		case <-s.quit:
		}
	}()

	return s, nil
}

// Start begins accepting connections on every configured listener.
func (s *server) Start() error {
	for _, ln := range s.listeners {
		s.wg.Add(1)
		go s.listenHandler(ln)
	}
	srvrLog.Info("Server start...")
	return nil
}

// listenHandler accepts connections on ln until the server is stopped.
func (s *server) listenHandler(ln net.Listener) {
	defer s.wg.Done()
	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-s.quit:
				return
			default:
				srvrLog.Errorf("Can't accept connection: %v", err)
				continue
			}
		}
		s.wg.Add(1)
		go s.peerHandler(conn)
	}
}

// peerHandler reads raw bytes off conn and feeds them to a dedicated
// netsync.Parser for the lifetime of the connection.
func (s *server) peerHandler(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	addr := conn.RemoteAddr()
	syncLog.Debugf("New peer connection from %s", addr)

	parser := netsync.NewParser(s.chainParams,
		func(msg wire.Message) {
			syncLog.Debugf("Received %s from %s", msg.Command(), addr)
		},
		func(err error) {
			syncLog.Debugf("Framing error from %s: %v", addr, err)
			// The parser does not drain an oversize payload, so the
			// stream cannot be re-framed; drop the connection.
			if errors.Is(err, wire.ErrOversizePacket) {
				conn.Close()
			}
		},
	)

	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			parser.Feed(buf[:n])
		}
		if err != nil {
			return
		}

		select {
		case <-s.quit:
			return
		default:
		}
	}
}

// Stop gracefully shuts down the server, closing every listener it owns.
func (s *server) Stop() error {
	s.quitOnce.Do(func() {
		close(s.quit)
		for _, ln := range s.listeners {
			ln.Close()
		}
	})
	srvrLog.Info("Server stop done")
	return nil
}

// WaitForShutdown blocks until every listener and peer goroutine the
// server spawned has exited.
func (s *server) WaitForShutdown() error {
	s.wg.Wait()
	syncLog.Info("Server wait for shutdown")
	return nil
}
