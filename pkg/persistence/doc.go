// Package persistence keeps the last snapshot of a signal tree in a JSON
// state file so that leaf values survive process restarts.
//
// The snapshot itself is stored in its CBOR encoding, which keeps integer
// and floating point values apart; the surrounding JSON carries the fields
// needed to decide whether the state can be restored without decoding it.
package persistence
