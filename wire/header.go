package wire

import (
	"bytes"
	"fmt"

	"github.com/creativechain/ccoin/chainhash"
)

// MessageHeader defines the header portion of a message sent over the
// wire protocol: a 4-byte network magic, a 12-byte NUL-padded command, a
// 4-byte payload length, and a 4-byte checksum.
type MessageHeader struct {
	magic    BitcoinNet
	Command  string
	Length   uint32
	Checksum [4]byte
}

// ParseMessageHeader decodes the 24-byte header buffer hdr, validating the
// network magic against net:
//
//  1. magic must match net, or ErrInvalidMagic.
//  2. the 12-byte command window must contain a NUL terminator, or
//     ErrUnterminatedCommand.
//  3. the declared payload length must not exceed maxPayload, or
//     ErrOversizePacket.
//
// The returned header's Checksum still needs to be verified against the
// payload once the payload itself has arrived; that step is
// VerifyChecksum below.
func ParseMessageHeader(hdr [MessageHeaderSize]byte, net BitcoinNet, maxPayload uint32) (*MessageHeader, error) {
	var h MessageHeader
	h.magic = BitcoinNet(littleEndian.Uint32(hdr[0:4]))
	if h.magic != net {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrInvalidMagic, h.magic, net)
	}

	commandBytes := hdr[4:16]
	nulIdx := bytes.IndexByte(commandBytes, 0)
	if nulIdx == -1 {
		return nil, ErrUnterminatedCommand
	}
	h.Command = string(commandBytes[:nulIdx])

	h.Length = littleEndian.Uint32(hdr[16:20])
	if h.Length > maxPayload {
		return nil, fmt.Errorf("%w: command %q declares %d bytes, max is %d",
			ErrOversizePacket, h.Command, h.Length, maxPayload)
	}

	copy(h.Checksum[:], hdr[20:24])
	return &h, nil
}

// VerifyChecksum reports whether payload's double-SHA-256 checksum matches
// the one recorded in the header.
func (h *MessageHeader) VerifyChecksum(payload []byte) bool {
	sum := chainhash.DoubleHashB(payload)
	return bytes.Equal(sum[:4], h.Checksum[:])
}

// checksum computes the 4-byte wire checksum for a payload: the first four
// bytes of SHA-256(SHA-256(payload)).
func checksum(payload []byte) [4]byte {
	sum := chainhash.DoubleHashB(payload)
	var out [4]byte
	copy(out[:], sum[:4])
	return out
}
