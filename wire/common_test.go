package wire

import (
	"bytes"
	"testing"
)

func TestVarIntRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xfc, 0xfd, 0xffff, 0x10000, 0xffffffff, 0x100000000, ^uint64(0)}

	for _, v := range values {
		var buf bytes.Buffer
		if err := WriteVarInt(&buf, 0, v); err != nil {
			t.Fatalf("WriteVarInt(%d): %v", v, err)
		}
		if got := buf.Len(); got != VarIntSerializeSize(v) {
			t.Errorf("VarIntSerializeSize(%d) = %d, but wrote %d bytes", v, VarIntSerializeSize(v), got)
		}

		got, err := ReadVarInt(&buf, 0)
		if err != nil {
			t.Fatalf("ReadVarInt after writing %d: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip for %d produced %d", v, got)
		}
	}
}

func TestVarBytesRoundTrip(t *testing.T) {
	payload := []byte("a wire protocol payload")

	var buf bytes.Buffer
	if err := WriteVarBytes(&buf, 0, payload); err != nil {
		t.Fatalf("WriteVarBytes: %v", err)
	}

	got, err := ReadVarBytes(&buf, 0, uint32(len(payload)), "payload")
	if err != nil {
		t.Fatalf("ReadVarBytes: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("ReadVarBytes = %q, want %q", got, payload)
	}
}

func TestReadVarBytesRejectsOversizeClaim(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteVarBytes(&buf, 0, []byte("0123456789")); err != nil {
		t.Fatalf("WriteVarBytes: %v", err)
	}

	if _, err := ReadVarBytes(&buf, 0, 5, "payload"); err == nil {
		t.Fatal("ReadVarBytes accepted a claimed length exceeding maxAllowed")
	}
}
