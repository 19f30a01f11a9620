package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/creativechain/ccoin/chainhash"
)

// MaxBlockHeaderPayload is the number of bytes a block header can be, not
// including the number of transactions.
const MaxBlockHeaderPayload = blockHeaderLen

// newPowVersion is the minimum block version that is mined under the
// Keccak-256 proof-of-work scheme rather than the legacy double-SHA-256
// scheme. Blocks below this version use the legacy hash.
const newPowVersion = 5

// BlockHeader defines information about a block and is used to in the bitcoin
// block (MsgBlock) and headers (MsgHeaders) messages.
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkelRoot chainhash.Hash

	// Time the block was created. This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

const blockHeaderLen = 80

func (h *BlockHeader) BtcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	return writeBlockHeader(w, pver, h)
}

func (h *BlockHeader) BtcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	return readBlockHeader(r, pver, h)
}

// HasNewPowVersion reports whether this header was mined under the newer
// Keccak-256 proof-of-work scheme. It implements blockchain.AbstractBlock.
func (h *BlockHeader) HasNewPowVersion() bool {
	return h.Version >= newPowVersion
}

// PowHash returns the hash this header's proof-of-work target is checked
// against: Keccak-256 for newer-version blocks, double-SHA-256 otherwise.
func (h *BlockHeader) PowHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, 0, h)
	if h.HasNewPowVersion() {
		return chainhash.KeccakHashH(buf.Bytes())
	}
	return chainhash.DoubleHashH(buf.Bytes())
}

// BlockHash computes the block identifier hash for the given block header.
// Unlike PowHash, the block's identity hash is always double-SHA-256,
// independent of which proof-of-work scheme mined it.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encode the header and double sha256 everything prior to the number of
	// transactions. Ignore the error returns since there is no way the
	// encode could fail except being out of memory which would cause a
	// run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, 0, h)
	return chainhash.DoubleHashH(buf.Bytes())
}

func writeBlockHeader(w io.Writer, pver uint32, bh *BlockHeader) error {
	sec := uint32(bh.Timestamp.Unix())
	return writeElements(w, bh.Version, &bh.PrevBlock, &bh.MerkelRoot, sec, bh.Bits, bh.Nonce)
}

func readBlockHeader(r io.Reader, pver uint32, bh *BlockHeader) error {
	var sec uint32
	err := readElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkelRoot, &sec, &bh.Bits, &bh.Nonce)
	if err != nil {
		return err
	}
	bh.Timestamp = time.Unix(int64(sec), 0)
	return nil
}
