package wire

import "io"

// CmdVerAck is the command string for MsgVerAck.
const CmdVerAck = "verack"

// MsgVerAck defines a message with no payload that acknowledges a MsgVersion
// message. A header carrying length 0 is legal: its checksum is computed
// over zero bytes and BtcDecode has nothing to read.
type MsgVerAck struct{}

func (msg *MsgVerAck) BtcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	return nil
}

func (msg *MsgVerAck) BtcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	return nil
}

func (msg *MsgVerAck) Command() string {
	return CmdVerAck
}

func (msg *MsgVerAck) MaxPayloadLength(pver uint32) uint32 {
	return 0
}

// NewMsgVerAck returns a new verack message that conforms to the Message
// interface. See MsgVerAck for details.
func NewMsgVerAck() *MsgVerAck {
	return &MsgVerAck{}
}
