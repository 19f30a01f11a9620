package wire

import (
	"bytes"
	"fmt"
	"io"
)

// WriteMessage writes a complete wire message (header + payload) for msg
// to w, using net as the network magic. It is the encode-side counterpart
// to the netsync.Parser's decode loop, and is mainly useful for tests and
// for a transport layer writing outbound messages.
func WriteMessage(w io.Writer, msg Message, pver uint32, net BitcoinNet) error {
	cmd := msg.Command()
	if len(cmd) > CommandSize {
		return fmt.Errorf("command %q exceeds max command size of %d", cmd, CommandSize)
	}

	var payload bytes.Buffer
	if err := msg.BtcEncode(&payload, pver, BaseEncoding); err != nil {
		return err
	}
	payloadBytes := payload.Bytes()

	if uint32(len(payloadBytes)) > msg.MaxPayloadLength(pver) {
		return fmt.Errorf("message payload is too large - encoded %d bytes, but max allowed is %d",
			len(payloadBytes), msg.MaxPayloadLength(pver))
	}

	var commandBytes [CommandSize]byte
	copy(commandBytes[:], cmd)

	sum := checksum(payloadBytes)

	if err := writeElements(w, net, commandBytes, uint32(len(payloadBytes)), sum); err != nil {
		return err
	}
	_, err := w.Write(payloadBytes)
	return err
}
