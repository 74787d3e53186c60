//go:build !cgo

package storage

import "errors"

// OpenSQLite3 is unavailable without cgo; use DriverSQLite instead.
func OpenSQLite3(path string) (*DB, error) {
	return nil, errors.New("sqlite3 driver requires cgo, use the sqlite driver instead")
}
