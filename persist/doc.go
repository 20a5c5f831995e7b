// Package persist defines the wire-facing snapshot form and the gateway
// contract for storing a navigation history outside the process.
//
// A Gateway stores at most one Snapshot. Load collapses "never saved" and
// "stored data could not be parsed" into a single absent outcome; callers
// cannot distinguish the two. Save failures always propagate.
//
// Concrete gateways live in the subpackages jsonfile and sqlitestore.
package persist
