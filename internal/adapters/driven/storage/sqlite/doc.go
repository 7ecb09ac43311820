// Package sqlite provides SQLite-backed implementations of the driven
// storage ports using the pure-Go modernc.org/sqlite driver.
package sqlite
