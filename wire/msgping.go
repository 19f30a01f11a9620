package wire

import "io"

// CmdPing and CmdPong are the command strings for MsgPing and MsgPong.
const (
	CmdPing = "ping"
	CmdPong = "pong"
)

// MsgPing implements the Message interface and is used to periodically
// confirm that a connection is still valid. The payload carries an
// identifying nonce so the response can be matched to the request.
type MsgPing struct {
	Nonce uint64
}

func (msg *MsgPing) BtcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	return readElement(r, &msg.Nonce)
}

func (msg *MsgPing) BtcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	return writeElement(w, msg.Nonce)
}

func (msg *MsgPing) Command() string {
	return CmdPing
}

func (msg *MsgPing) MaxPayloadLength(pver uint32) uint32 {
	return 8
}

// NewMsgPing returns a new ping message that conforms to the Message
// interface. See MsgPing for details.
func NewMsgPing(nonce uint64) *MsgPing {
	return &MsgPing{Nonce: nonce}
}

// MsgPong implements the Message interface and is the reply to MsgPing,
// echoing back the nonce it carried.
type MsgPong struct {
	Nonce uint64
}

func (msg *MsgPong) BtcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	return readElement(r, &msg.Nonce)
}

func (msg *MsgPong) BtcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	return writeElement(w, msg.Nonce)
}

func (msg *MsgPong) Command() string {
	return CmdPong
}

func (msg *MsgPong) MaxPayloadLength(pver uint32) uint32 {
	return 8
}

// NewMsgPong returns a new pong message that conforms to the Message
// interface. See MsgPong for details.
func NewMsgPong(nonce uint64) *MsgPong {
	return &MsgPong{Nonce: nonce}
}
