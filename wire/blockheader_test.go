package wire

import (
	"bytes"
	"testing"
	"time"

	"github.com/creativechain/ccoin/chainhash"
)

func sampleHeader(version int32) *BlockHeader {
	return &BlockHeader{
		Version:    version,
		PrevBlock:  chainhash.HashH([]byte("prev")),
		MerkelRoot: chainhash.HashH([]byte("merkle")),
		Timestamp:  time.Unix(1600000000, 0),
		Bits:       0x1d00ffff,
		Nonce:      42,
	}
}

func TestBlockHeaderEncodeDecodeRoundTrip(t *testing.T) {
	h := sampleHeader(4)

	var buf bytes.Buffer
	if err := h.BtcEncode(&buf, 0, BaseEncoding); err != nil {
		t.Fatalf("BtcEncode: %v", err)
	}
	if buf.Len() != blockHeaderLen {
		t.Fatalf("encoded header is %d bytes, want %d", buf.Len(), blockHeaderLen)
	}

	var got BlockHeader
	if err := got.BtcDecode(&buf, 0, BaseEncoding); err != nil {
		t.Fatalf("BtcDecode: %v", err)
	}

	if got.Version != h.Version || got.Bits != h.Bits || got.Nonce != h.Nonce {
		t.Fatalf("decoded header %+v does not match original %+v", got, h)
	}
	if !got.PrevBlock.IsEqual(&h.PrevBlock) || !got.MerkelRoot.IsEqual(&h.MerkelRoot) {
		t.Fatal("decoded header hashes do not match original")
	}
	if got.Timestamp.Unix() != h.Timestamp.Unix() {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, h.Timestamp)
	}
}

func TestBlockHeaderPowHashDispatch(t *testing.T) {
	legacy := sampleHeader(newPowVersion - 1)
	newer := sampleHeader(newPowVersion)

	if legacy.HasNewPowVersion() {
		t.Fatal("legacy header reports HasNewPowVersion")
	}
	if !newer.HasNewPowVersion() {
		t.Fatal("new-version header does not report HasNewPowVersion")
	}

	if legacy.PowHash() != legacy.BlockHash() {
		t.Error("legacy header's PowHash should equal its double-SHA-256 BlockHash")
	}
	if newer.PowHash() == newer.BlockHash() {
		t.Error("new-version header's PowHash should differ from its double-SHA-256 BlockHash")
	}
}
