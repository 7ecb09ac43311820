// Package driven defines interfaces that core services depend on for
// storage, configuration and dataset access. These are the "driven" ports
// in hexagonal architecture terminology - the application drives them.
//
// Implementations live in internal/adapters/driven.
package driven
