// Package services implements the driving ports with the application's
// business logic, wired to driven ports for storage and dataset access.
package services
