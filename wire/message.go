package wire

import (
	"fmt"
	"io"
)

type MessageEncoding uint32

// MessageHeaderSize is the number of bytes in a bitcoin message header.
// Bitcoin network (magic) 4 bytes + command 12 bytes + payload length 4 bytes +
// checksum 4 bytes.
const MessageHeaderSize = 24

// CommandSize is the fixes size of all commands in the common bitcoin message
// header. Shorter commands must be zero padded.
const CommandSize = 12

// MaxMessagePayload is the maximum bytes a message payload can be. This
// bounds the "waiting" threshold a netsync.Parser will ever ask for.
const MaxMessagePayload = 32 * 1024 * 1024

const (
	// BaseEncoding encodes all messages in the default format specified
	// for the Bitcoin wire protocol.
	BaseEncoding MessageEncoding = 1 << iota

	// WitnessEncoding names the BIP0144 witness encoding for transaction
	// messages. The message types in this package do not implement it:
	// they encode and decode identically under both encodings, with no
	// witness data.
	WitnessEncoding
)

// BitcoinNet represents which bitcoin network a message belongs to.
type BitcoinNet uint32

// Constants used to indicate the message bitcoin network. They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not use that technique, only exposing these for use as
// chaincfg.Params.Net values.
const (
	// MainNet represents the main bitcoin network.
	MainNet BitcoinNet = 0xc9b10ef3

	// TestNet represents the test network.
	TestNet BitcoinNet = 0xfabfb5da

	// RegTest represents the regression test network.
	RegTest BitcoinNet = 0xfabfb5db
)

// String returns the BitcoinNet in a human-readable form.
func (n BitcoinNet) String() string {
	switch n {
	case MainNet:
		return "MainNet"
	case TestNet:
		return "TestNet"
	case RegTest:
		return "RegTest"
	default:
		return fmt.Sprintf("Unknown BitcoinNet (%d)", uint32(n))
	}
}

// Message is the interface a concrete message type must implement in order
// to be dispatched by MakeEmptyMessage and decoded by the netsync parser.
type Message interface {
	BtcDecode(r io.Reader, pver uint32, enc MessageEncoding) error
	BtcEncode(w io.Writer, pver uint32, enc MessageEncoding) error
	Command() string
	MaxPayloadLength(pver uint32) uint32
}

// MakeEmptyMessage creates a message of the appropriate concrete type based
// on the command string. The netsync parser calls this, then BtcDecode,
// rather than taking a whole-message constructor function.
func MakeEmptyMessage(command string) (Message, error) {
	switch command {
	case CmdPing:
		return &MsgPing{}, nil
	case CmdPong:
		return &MsgPong{}, nil
	case CmdVerAck:
		return &MsgVerAck{}, nil
	case CmdTx:
		return &MsgTx{}, nil
	case CmdBlock:
		return &MsgBlock{}, nil
	default:
		return nil, fmt.Errorf("unhandled command %q", command)
	}
}
