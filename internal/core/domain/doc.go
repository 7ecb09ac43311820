// Package domain contains the core entities of mapguess: countries with
// their geometry, game sessions, guess matching rules, and settings.
// It has no dependencies on adapters or external services.
package domain
