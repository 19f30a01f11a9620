// Package netsync implements the stream-oriented message framer peers use
// to turn a raw byte stream from a TCP connection into decoded wire
// messages: it validates the network magic, parses the fixed-size header,
// verifies the payload checksum, and dispatches the result to a consumer.
//
// The parser is single-threaded and cooperative: Feed runs to completion
// synchronously and never blocks. This keeps it usable from any execution
// context — a dedicated reader goroutine, a worker pool, or a test.
package netsync

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/creativechain/ccoin/chaincfg"
	"github.com/creativechain/ccoin/wire"
)

// ErrInvalidChecksum indicates a payload's computed checksum did not match
// the one recorded in its header.
var ErrInvalidChecksum = errors.New("netsync: invalid message checksum")

// Parser is an incremental framing state machine, one per peer connection.
// It owns an unconsumed-byte queue (pending/total) and a waiting threshold
// describing how many more bytes it needs before it can make progress.
type Parser struct {
	params *chaincfg.Params

	pending [][]byte
	total   int
	waiting int
	header  *wire.MessageHeader

	pver       uint32
	maxPayload uint32

	onPacket func(wire.Message)
	onError  func(error)
}

// NewParser constructs a parser bound to one network's magic. onPacket is
// called synchronously, once per successfully decoded message; onError is
// called synchronously for every recoverable framing or decode failure.
// Either callback may be nil, in which case the corresponding notification
// is silently dropped.
func NewParser(params *chaincfg.Params, onPacket func(wire.Message), onError func(error)) *Parser {
	return &Parser{
		params:     params,
		waiting:    wire.MessageHeaderSize,
		maxPayload: wire.MaxMessagePayload,
		onPacket:   onPacket,
		onError:    onError,
	}
}

// Feed appends data to the parser's internal queue and synchronously
// drives as many framing steps as the now-available bytes allow. It never
// blocks and never returns an error — failures are reported through
// onError instead.
func (p *Parser) Feed(data []byte) {
	if len(data) == 0 {
		return
	}

	p.pending = append(p.pending, data)
	p.total += len(data)

	for p.total >= p.waiting {
		if p.header == nil {
			if !p.stepHeader() {
				return
			}
		} else {
			if !p.stepPayload() {
				return
			}
		}
	}
}

// stepHeader consumes wire.MessageHeaderSize bytes and attempts to parse
// them as a message header. It returns false if the queue was mutated in
// a way that means the outer Feed loop should stop driving further steps
// this call (currently always returns true; kept boolean for symmetry
// with stepPayload and to leave room for a future backpressure signal).
func (p *Parser) stepHeader() bool {
	raw := p.take(wire.MessageHeaderSize)
	var hdr [wire.MessageHeaderSize]byte
	copy(hdr[:], raw)

	header, err := wire.ParseMessageHeader(hdr, p.params.Net, p.maxPayload)
	if err != nil {
		p.reportError(err)
		p.resetFraming()
		return true
	}

	p.header = header
	p.waiting = int(header.Length)
	return true
}

// stepPayload consumes p.header.Length bytes, verifies their checksum,
// decodes them through the command's registered Message type, and emits
// either a packet or an error notification.
func (p *Parser) stepPayload() bool {
	payload := p.take(int(p.header.Length))

	if !p.header.VerifyChecksum(payload) {
		p.reportError(fmt.Errorf("%w: command %q", ErrInvalidChecksum, p.header.Command))
		p.resetFraming()
		return true
	}

	msg, err := wire.MakeEmptyMessage(p.header.Command)
	if err != nil {
		p.reportError(err)
		p.resetFraming()
		return true
	}

	if err := msg.BtcDecode(bytes.NewReader(payload), p.pver, wire.BaseEncoding); err != nil {
		p.reportError(err)
		p.resetFraming()
		return true
	}

	p.resetFraming()
	if p.onPacket != nil {
		p.onPacket(msg)
	}
	return true
}

// resetFraming returns the parser to AWAIT_HEADER: every error path and
// every successful payload decode resets here, without scanning the
// stream for re-synchronization. A connection that desyncs mid-payload
// (for instance after an oversize-packet rejection) stays desynced until
// the owning goroutine closes it; this parser does not attempt to hunt
// for the next valid magic bytes in the remaining stream.
func (p *Parser) resetFraming() {
	p.header = nil
	p.waiting = wire.MessageHeaderSize
}

func (p *Parser) reportError(err error) {
	log.Debugf("framing error: %v", err)
	if p.onError != nil {
		p.onError(err)
	}
}

// take drains exactly n bytes from the head of pending, in FIFO order,
// returning them as a single contiguous slice. It never mutates bytes the
// parser has not yet consumed: partially-consumed buffers are advanced by
// reslicing their head, never written to.
func (p *Parser) take(n int) []byte {
	if n == 0 {
		return nil
	}

	if len(p.pending) > 0 && len(p.pending[0]) == n {
		buf := p.pending[0]
		p.pending = p.pending[1:]
		p.total -= n
		return buf
	}

	out := make([]byte, n)
	copied := 0
	for copied < n {
		head := p.pending[0]
		need := n - copied
		if len(head) <= need {
			copy(out[copied:], head)
			copied += len(head)
			p.pending = p.pending[1:]
		} else {
			copy(out[copied:], head[:need])
			p.pending[0] = head[need:]
			copied += need
		}
	}
	p.total -= n
	return out
}
