package wire

import (
	"bytes"
	"testing"
	"time"

	"github.com/creativechain/ccoin/chainhash"
)

func TestMsgBlockSerializeSizeMatchesEncodedLength(t *testing.T) {
	block := &MsgBlock{
		Header: BlockHeader{
			Version:    1,
			PrevBlock:  chainhash.HashH([]byte("prev")),
			MerkelRoot: chainhash.HashH([]byte("merkle")),
			Timestamp:  time.Unix(1600000000, 0),
			Bits:       0x1d00ffff,
			Nonce:      7,
		},
	}

	tx := &MsgTx{Version: 1, LockTime: 0}
	tx.AddTxIn(&TxIn{
		PreviousOutPoint: OutPoint{Hash: chainhash.HashH([]byte("outpoint")), Index: 0},
		SignatureScript:  []byte{0x01, 0x02},
		Sequence:         0xffffffff,
	})
	tx.AddTxOut(&TxOut{Value: 5000000000, PkScript: []byte{0x76, 0xa9}})
	block.Transactions = append(block.Transactions, tx)

	var buf bytes.Buffer
	if err := block.BtcEncode(&buf, 0, BaseEncoding); err != nil {
		t.Fatalf("BtcEncode: %v", err)
	}

	if got, want := buf.Len(), block.SerializeSize(); got != want {
		t.Errorf("encoded %d bytes, SerializeSize() reported %d", got, want)
	}
}

func TestMsgBlockDecodeRoundTripViaMakeEmptyMessage(t *testing.T) {
	block := &MsgBlock{
		Header: BlockHeader{
			Version:    1,
			PrevBlock:  chainhash.HashH([]byte("prev")),
			MerkelRoot: chainhash.HashH([]byte("merkle")),
			Timestamp:  time.Unix(1600000000, 0),
			Bits:       0x1d00ffff,
			Nonce:      7,
		},
	}

	tx := &MsgTx{Version: 1, LockTime: 1}
	tx.AddTxIn(&TxIn{
		PreviousOutPoint: OutPoint{Hash: chainhash.HashH([]byte("outpoint")), Index: 1},
		SignatureScript:  []byte{0x01, 0x02, 0x03},
		Sequence:         0xffffffff,
	})
	tx.AddTxOut(&TxOut{Value: 1234, PkScript: []byte{0x76, 0xa9, 0x14}})
	block.Transactions = append(block.Transactions, tx)

	var buf bytes.Buffer
	if err := block.BtcEncode(&buf, 0, BaseEncoding); err != nil {
		t.Fatalf("BtcEncode: %v", err)
	}

	msg, err := MakeEmptyMessage(CmdBlock)
	if err != nil {
		t.Fatalf("MakeEmptyMessage(%q): %v", CmdBlock, err)
	}
	if err := msg.BtcDecode(&buf, 0, BaseEncoding); err != nil {
		t.Fatalf("BtcDecode: %v", err)
	}

	got, ok := msg.(*MsgBlock)
	if !ok {
		t.Fatalf("MakeEmptyMessage(%q) returned %T, want *MsgBlock", CmdBlock, msg)
	}

	if got.BlockHash() != block.BlockHash() {
		t.Error("decoded block hash does not match the original")
	}
	if len(got.Transactions) != 1 {
		t.Fatalf("decoded %d transactions, want 1", len(got.Transactions))
	}
	gotTx := got.Transactions[0]
	if gotTx.LockTime != tx.LockTime || len(gotTx.TxIn) != 1 || len(gotTx.TxOut) != 1 {
		t.Fatalf("decoded transaction %+v does not match original %+v", gotTx, tx)
	}
	if gotTx.TxIn[0].PreviousOutPoint != tx.TxIn[0].PreviousOutPoint {
		t.Error("decoded TxIn.PreviousOutPoint does not match the original")
	}
	if !bytes.Equal(gotTx.TxIn[0].SignatureScript, tx.TxIn[0].SignatureScript) {
		t.Error("decoded TxIn.SignatureScript does not match the original")
	}
	if gotTx.TxOut[0].Value != tx.TxOut[0].Value || !bytes.Equal(gotTx.TxOut[0].PkScript, tx.TxOut[0].PkScript) {
		t.Error("decoded TxOut does not match the original")
	}
}

func TestMsgBlockHashMatchesHeaderHash(t *testing.T) {
	block := &MsgBlock{
		Header: BlockHeader{
			Version:   1,
			Timestamp: time.Unix(0, 0),
			Bits:      0x1d00ffff,
		},
	}
	if block.BlockHash() != block.Header.BlockHash() {
		t.Error("MsgBlock.BlockHash() does not match its header's BlockHash()")
	}
}
