// Command vssctl inspects and edits a vehicle signal tree from the command line.
//
// The tree is built from the embedded vehicle schema or from a schema file.
// Leaf values live only in memory unless a state file is given, in which
// case they are restored before each command and saved after every change.
//
// Usage:
//
//	vssctl [flags] <command> [args]
//
// Commands:
//
//	tree      Print the tree, or the subtree below a path
//	get       Read leaf values
//	set       Write a leaf value
//	reset     Return a leaf to the unset state
//	query     Select leaves with a JSONPath expression
//	schema    Print the schema, its fingerprint, or validate a schema file
//	export    Export leaf values as JSON, JSONL or CSV
//	snapshot  Save or restore a CBOR snapshot file
//	journal   View, export, filter or summarize a journal
//	shell     Interactive shell
//
// Examples:
//
//	# Show the cabin subtree with types and ranges
//	vssctl tree Cabin --metadata
//
//	# Set a seat heater and keep the value across runs
//	vssctl --state vss.json set Cabin/Seat/Row1/DriverSide/Heating 30
//
//	# Record every access in a journal
//	vssctl --state vss.json --journal vss.vlog query '$..TirePressure'
//
//	# Show only failed writes from the journal
//	vssctl journal view --op write --errors vss.vlog
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
