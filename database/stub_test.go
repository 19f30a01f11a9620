package database

import (
	"errors"
	"testing"

	"github.com/creativechain/ccoin/chainhash"
)

func TestDriverRegistryRejectsDuplicate(t *testing.T) {
	if err := RegisterDriver(Driver{DbType: "stub"}); err == nil {
		t.Fatal("RegisterDriver did not reject a duplicate DbType")
	}
}

func TestSupportedDriversIncludesStub(t *testing.T) {
	found := false
	for _, name := range SupportedDrivers() {
		if name == "stub" {
			found = true
		}
	}
	if !found {
		t.Fatal("SupportedDrivers does not include the registered stub driver")
	}
}

func TestCreateUnknownDriver(t *testing.T) {
	if _, err := Create("nonexistent"); err == nil {
		t.Fatal("Create did not reject an unregistered driver type")
	}
}

func TestStubDBBeginAfterClose(t *testing.T) {
	db, err := Create("stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := db.Begin(false); err == nil {
		t.Fatal("Begin succeeded against a closed database")
	}
}

func TestStubTxStoreAndFetchBlock(t *testing.T) {
	db, err := Create("stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer db.Close()

	tx, err := db.Begin(true)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	hash := chainhash.HashH([]byte("block"))
	payload := []byte("raw block bytes")

	if err := tx.StoreBlock(&hash, payload); err != nil {
		t.Fatalf("StoreBlock: %v", err)
	}
	if err := tx.StoreBlock(&hash, payload); !errors.Is(err, ErrBlockExists) {
		t.Fatalf("StoreBlock duplicate = %v, want ErrBlockExists", err)
	}

	got, err := tx.FetchBlock(&hash)
	if err != nil {
		t.Fatalf("FetchBlock: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("FetchBlock = %q, want %q", got, payload)
	}

	missing := chainhash.HashH([]byte("missing"))
	if _, err := tx.FetchBlock(&missing); !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("FetchBlock missing = %v, want ErrBlockNotFound", err)
	}

	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := tx.Commit(); !errors.Is(err, ErrTxClosed) {
		t.Fatalf("second Commit = %v, want ErrTxClosed", err)
	}
}

func TestStubTxReadOnlyRejectsStoreBlock(t *testing.T) {
	db, err := Create("stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer db.Close()

	tx, err := db.Begin(false)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	hash := chainhash.HashH([]byte("block"))
	if err := tx.StoreBlock(&hash, []byte("x")); !errors.Is(err, ErrTxNotWritable) {
		t.Fatalf("StoreBlock on read-only tx = %v, want ErrTxNotWritable", err)
	}
}

func TestStubBucketPutGetDelete(t *testing.T) {
	b := newStubBucket(true)

	if err := b.Put([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if got := b.Get([]byte("k")); string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}
	if err := b.Delete([]byte("k")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := b.Get([]byte("k")); got != nil {
		t.Errorf("Get after Delete = %q, want nil", got)
	}
}

func TestStubBucketReadOnlyRejectsPut(t *testing.T) {
	b := newStubBucket(false)
	if err := b.Put([]byte("k"), []byte("v")); !errors.Is(err, ErrTxNotWritable) {
		t.Fatalf("Put on read-only bucket = %v, want ErrTxNotWritable", err)
	}
}

func TestStubCursorIteratesInSortedOrder(t *testing.T) {
	b := newStubBucket(true)
	for _, k := range []string{"c", "a", "b"} {
		if err := b.Put([]byte(k), []byte(k)); err != nil {
			t.Fatalf("Put(%q): %v", k, err)
		}
	}

	cur := b.Cursor()
	var got []string
	for ok := cur.First(); ok; ok = cur.Next() {
		got = append(got, string(cur.Key()))
	}

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestStubCursorSeek(t *testing.T) {
	b := newStubBucket(true)
	for _, k := range []string{"a", "c", "e"} {
		if err := b.Put([]byte(k), []byte(k)); err != nil {
			t.Fatalf("Put(%q): %v", k, err)
		}
	}

	cur := b.Cursor()
	if !cur.Seek([]byte("b")) {
		t.Fatal("Seek(\"b\") reported no match")
	}
	if got := string(cur.Key()); got != "c" {
		t.Errorf("Seek(\"b\") landed on %q, want %q", got, "c")
	}

	if cur.Seek([]byte("z")) {
		t.Error("Seek(\"z\") reported a match past the end")
	}
}
