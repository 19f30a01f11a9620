package database

import (
	"sort"

	"github.com/creativechain/ccoin/chainhash"
)

// stubBucket is a flat, in-memory Bucket. It does not support nested
// buckets; Bucket on it always returns nil and CreateBucket,
// CreateBucketIfNotExists and DeleteBucket always report ErrBucketNotFound,
// which is consistent with the stub's purpose of giving the server
// something to open and close during development, not a working store.
type stubBucket struct {
	writable bool
	kv       map[string][]byte
}

func newStubBucket(writable bool) *stubBucket {
	return &stubBucket{writable: writable, kv: make(map[string][]byte)}
}

func (b *stubBucket) Bucket(key []byte) Bucket { return nil }

func (b *stubBucket) CreateBucket(key []byte) (Bucket, error) {
	return nil, ErrBucketNotFound
}

func (b *stubBucket) CreateBucketIfNotExists(key []byte) (Bucket, error) {
	return nil, ErrBucketNotFound
}

func (b *stubBucket) DeleteBucket(key []byte) error {
	return ErrBucketNotFound
}

func (b *stubBucket) ForEach(fn func(k, v []byte) error) error {
	keys := make([]string, 0, len(b.kv))
	for k := range b.kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := fn([]byte(k), b.kv[k]); err != nil {
			return err
		}
	}
	return nil
}

func (b *stubBucket) ForEachBucket(fn func(k []byte) error) error { return nil }

func (b *stubBucket) Cursor() Cursor {
	keys := make([]string, 0, len(b.kv))
	for k := range b.kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &stubCursor{bucket: b, keys: keys, pos: -1}
}

func (b *stubBucket) Writable() bool { return b.writable }

func (b *stubBucket) Put(key, value []byte) error {
	if !b.writable {
		return ErrTxNotWritable
	}
	b.kv[string(key)] = append([]byte(nil), value...)
	return nil
}

func (b *stubBucket) Get(key []byte) []byte {
	return b.kv[string(key)]
}

func (b *stubBucket) Delete(key []byte) error {
	if !b.writable {
		return ErrTxNotWritable
	}
	delete(b.kv, string(key))
	return nil
}

// stubCursor walks a stubBucket's keys in sorted order.
type stubCursor struct {
	bucket *stubBucket
	keys   []string
	pos    int
}

func (c *stubCursor) Bucket() Bucket { return c.bucket }

func (c *stubCursor) Delete() error {
	if !c.bucket.writable {
		return ErrTxNotWritable
	}
	if c.pos < 0 || c.pos >= len(c.keys) {
		return nil
	}
	delete(c.bucket.kv, c.keys[c.pos])
	return nil
}

func (c *stubCursor) First() bool {
	c.pos = 0
	return len(c.keys) > 0
}

func (c *stubCursor) Last() bool {
	c.pos = len(c.keys) - 1
	return c.pos >= 0
}

func (c *stubCursor) Next() bool {
	c.pos++
	return c.pos < len(c.keys)
}

func (c *stubCursor) Prev() bool {
	c.pos--
	return c.pos >= 0
}

func (c *stubCursor) Seek(seek []byte) bool {
	target := string(seek)
	for i, k := range c.keys {
		if k >= target {
			c.pos = i
			return true
		}
	}
	c.pos = len(c.keys)
	return false
}

func (c *stubCursor) Key() []byte {
	if c.pos < 0 || c.pos >= len(c.keys) {
		return nil
	}
	return []byte(c.keys[c.pos])
}

func (c *stubCursor) Value() []byte {
	if c.pos < 0 || c.pos >= len(c.keys) {
		return nil
	}
	return c.bucket.kv[c.keys[c.pos]]
}

// stubTx is the Tx implementation handed out by stubDB. It holds blocks in
// memory only; nothing survives process restart.
type stubTx struct {
	writable bool
	closed   bool
	meta     *stubBucket
	blocks   map[chainhash.Hash][]byte
}

func (tx *stubTx) Metadata() Bucket {
	return tx.meta
}

func (tx *stubTx) StoreBlock(hash *chainhash.Hash, blockBytes []byte) error {
	if tx.closed {
		return ErrTxClosed
	}
	if !tx.writable {
		return ErrTxNotWritable
	}
	if tx.blocks == nil {
		tx.blocks = make(map[chainhash.Hash][]byte)
	}
	if _, exists := tx.blocks[*hash]; exists {
		return ErrBlockExists
	}
	tx.blocks[*hash] = append([]byte(nil), blockBytes...)
	return nil
}

func (tx *stubTx) FetchBlock(hash *chainhash.Hash) ([]byte, error) {
	if tx.closed {
		return nil, ErrTxClosed
	}
	b, ok := tx.blocks[*hash]
	if !ok {
		return nil, ErrBlockNotFound
	}
	return b, nil
}

func (tx *stubTx) Commit() error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true
	return nil
}

func (tx *stubTx) Rollback() error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true
	return nil
}
