package database

import "errors"

var (
	// ErrBlockExists is returned when a block that already exists in the
	// database is attempted to be stored again.
	ErrBlockExists = errors.New("database: block already exists")

	// ErrBlockNotFound is returned when a block is not found in the
	// database.
	ErrBlockNotFound = errors.New("database: block not found")

	// ErrTxNotWritable is returned when a write operation is attempted
	// against a read-only transaction.
	ErrTxNotWritable = errors.New("database: tx is not writable")

	// ErrTxClosed is returned when a method is invoked against a
	// transaction that has already been committed or rolled back.
	ErrTxClosed = errors.New("database: tx is closed")

	// ErrBucketNotFound is returned when a bucket is looked up that does
	// not exist.
	ErrBucketNotFound = errors.New("database: bucket not found")
)
