package database

import "fmt"

// Driver defines a structure for backend drivers to use when they registers
// themselves as a backend which implements the DB interface.
type Driver struct {
	// DbType is the identifier used to uniquely identify a specific
	// database driver. There can be only one driver with the same name.
	DbType string

	// Create is the function that will be invoked with all user-specified
	// arguments to create the database for the first time.
	Create func(args ...interface{}) (DB, error)

	// Open is the function that will be invoked with all user-specified
	// arguments to open an existing database for use.
	Open func(args ...interface{}) (DB, error)

	// UseLogger uses a specified Logger to output package logging info.
	UseLogger func(logger Logger)
}

// drivers holds all of the registered database backends.
var drivers = make(map[string]*Driver)

// RegisterDriver adds a backend database driver to available interfaces.
// An error is returned if the database type for the driver has already
// been registered.
func RegisterDriver(driver Driver) error {
	if _, exists := drivers[driver.DbType]; exists {
		return fmt.Errorf("driver %q is already registered", driver.DbType)
	}
	drivers[driver.DbType] = &driver
	return nil
}

// SupportedDrivers returns a slice of strings that represent the database
// drivers that have been registered and are therefore supported.
func SupportedDrivers() []string {
	supportedDBs := make([]string, 0, len(drivers))
	for _, drv := range drivers {
		supportedDBs = append(supportedDBs, drv.DbType)
	}
	return supportedDBs
}

// Create initializes and opens a database for the specified type. The
// arguments are specific to the database type driver. See the documentation
// for the database driver for further details.
func Create(dbType string, args ...interface{}) (DB, error) {
	drv, exists := drivers[dbType]
	if !exists {
		return nil, fmt.Errorf("driver %q is not registered", dbType)
	}
	return drv.Create(args...)
}

// Open opens an existing database for the specified type. The arguments are
// specific to the database type driver. See the documentation for the
// database driver for further details.
func Open(dbType string, args ...interface{}) (DB, error) {
	drv, exists := drivers[dbType]
	if !exists {
		return nil, fmt.Errorf("driver %q is not registered", dbType)
	}
	return drv.Open(args...)
}

// stubDB is the narrowest possible DB implementation: an in-memory
// placeholder registered under "stub" so the server can open a database
// handle during development without a real storage backend wired in. It
// holds no data and every Tx it hands out is empty. A leveldb-backed driver
// belongs behind this same Driver contract, not inside this package.
type stubDB struct {
	closed bool
}

func (db *stubDB) Type() string {
	return "stub"
}

func (db *stubDB) Begin(writable bool) (Tx, error) {
	if db.closed {
		return nil, fmt.Errorf("database is closed")
	}
	return &stubTx{writable: writable, meta: newStubBucket(writable)}, nil
}

func (db *stubDB) Close() error {
	db.closed = true
	return nil
}

func init() {
	_ = RegisterDriver(Driver{
		DbType: "stub",
		Create: func(args ...interface{}) (DB, error) { return &stubDB{}, nil },
		Open:   func(args ...interface{}) (DB, error) { return &stubDB{}, nil },
	})
}
