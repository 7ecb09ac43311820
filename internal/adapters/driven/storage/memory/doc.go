// Package memory provides in-memory implementations of the driven storage
// ports, used in tests and as fallbacks when persistence is unavailable.
package memory
