package wire

import "errors"

// Sentinel errors for recoverable header-framing failures: a misbehaving
// peer produces one of these through a Parser's error callback, and
// framing resumes at AWAIT_HEADER.
var (
	// ErrInvalidMagic indicates a header's network magic did not match
	// the parser's configured network.
	ErrInvalidMagic = errors.New("wire: invalid network magic")

	// ErrUnterminatedCommand indicates a header's 12-byte command field
	// had no NUL terminator.
	ErrUnterminatedCommand = errors.New("wire: unterminated command string")

	// ErrOversizePacket indicates a header declared a payload length
	// larger than the configured maximum.
	ErrOversizePacket = errors.New("wire: oversize payload length")
)
