// Package solo contains the single-call timeout combinators. Each call races
// one operation against one deadline and returns a race.Outcome.
//
// Highlights:
// - WithTimeout: spawn an operation and race it against a deadline
// - Within: race an already-spawned future against a deadline
// - Finally: reduce an outcome to a value via completed/expired handlers
package solo
