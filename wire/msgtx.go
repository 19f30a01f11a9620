package wire

import (
	"fmt"
	"io"

	"github.com/creativechain/ccoin/chainhash"
)

// CmdTx is the command string for MsgTx.
const CmdTx = "tx"

// minTxInPayload and minTxOutPayload are the smallest a TxIn/TxOut can
// possibly serialize to (empty signature script / pk script). They bound
// how many of each a MaxMessagePayload-sized message could ever carry, so
// BtcDecode can reject an absurd count before allocating for it.
const (
	minTxInPayload  = 4 + chainhash.HashSize + 4 + 1
	minTxOutPayload = 8 + 1
)

const (
	maxTxInPerMessage  = MaxMessagePayload/minTxInPayload + 1
	maxTxOutPerMessage = MaxMessagePayload/minTxOutPayload + 1
)

// OutPoint defines a bitcion data type that is used to track previous transaction
// outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new bitcoin transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

type TxWitness [][]byte

// TxIn defines a bitcion transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Witness          TxWitness
	Sequence         uint32
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input.
func (t *TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	return 40 + VarIntSerializeSize(uint64(len(t.SignatureScript))) + len(t.SignatureScript)
}

// TxOut defines a bitcoin transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction output.
func (t *TxOut) SerializeSize() int {
	// Value 8 bytes + serialized varint size for the length of PkScript +
	// PkScript bytes.
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript)
}

// MsgTx implements the Message interface and represents a bitcion tx message.
// It is used to deliver transaction information in response to a getdata
// message (MsgGetData) for a given transaction.
//
// Use the AddTxIn and AddTxOut functions to build up the list of transaction
// inputs and outputs.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + LockTime 4 bytes + serialized varint sizes for the
	// number of transaction inputs and outputs.
	n := 8 + VarIntSerializeSize(uint64(len(msg.TxIn))) + VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}
	for _, txOut := range msg.TxOut {
		n += txOut.SerializeSize()
	}
	return n
}

// BtcEncode encodes the receiver to w using the bitcoin protocol encoding.
func (msg *MsgTx) BtcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	if err := writeElement(w, msg.Version); err != nil {
		return err
	}
	if err := WriteVarInt(w, pver, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeElements(w, &ti.PreviousOutPoint.Hash, ti.PreviousOutPoint.Index); err != nil {
			return err
		}
		if err := WriteVarBytes(w, pver, ti.SignatureScript); err != nil {
			return err
		}
		if err := writeElement(w, ti.Sequence); err != nil {
			return err
		}
	}
	if err := WriteVarInt(w, pver, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeElement(w, to.Value); err != nil {
			return err
		}
		if err := WriteVarBytes(w, pver, to.PkScript); err != nil {
			return err
		}
	}
	return writeElement(w, msg.LockTime)
}

// BtcDecode decodes r from the bitcoin protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgTx) BtcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	if err := readElement(r, &msg.Version); err != nil {
		return err
	}

	txInCount, err := ReadVarInt(r, pver)
	if err != nil {
		return err
	}
	if txInCount > maxTxInPerMessage {
		return fmt.Errorf("too many transaction inputs to fit into max message size [count %d, max %d]",
			txInCount, maxTxInPerMessage)
	}

	msg.TxIn = make([]*TxIn, 0, txInCount)
	for i := uint64(0); i < txInCount; i++ {
		ti := new(TxIn)
		if err := readElements(r, &ti.PreviousOutPoint.Hash, &ti.PreviousOutPoint.Index); err != nil {
			return err
		}
		sigScript, err := ReadVarBytes(r, pver, MaxMessagePayload, "signature script")
		if err != nil {
			return err
		}
		ti.SignatureScript = sigScript
		if err := readElement(r, &ti.Sequence); err != nil {
			return err
		}
		msg.TxIn = append(msg.TxIn, ti)
	}

	txOutCount, err := ReadVarInt(r, pver)
	if err != nil {
		return err
	}
	if txOutCount > maxTxOutPerMessage {
		return fmt.Errorf("too many transaction outputs to fit into max message size [count %d, max %d]",
			txOutCount, maxTxOutPerMessage)
	}

	msg.TxOut = make([]*TxOut, 0, txOutCount)
	for i := uint64(0); i < txOutCount; i++ {
		to := new(TxOut)
		if err := readElement(r, &to.Value); err != nil {
			return err
		}
		pkScript, err := ReadVarBytes(r, pver, MaxMessagePayload, "pk script")
		if err != nil {
			return err
		}
		to.PkScript = pkScript
		msg.TxOut = append(msg.TxOut, to)
	}

	return readElement(r, &msg.LockTime)
}

// Command returns the protocol command string for a transaction message.
// This is part of the Message interface implementation.
func (msg *MsgTx) Command() string {
	return CmdTx
}

// MaxPayloadLength returns the maximum length the payload can be for a
// transaction message. This is part of the Message interface
// implementation.
func (msg *MsgTx) MaxPayloadLength(pver uint32) uint32 {
	return MaxMessagePayload
}
