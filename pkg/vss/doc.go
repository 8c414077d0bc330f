// Package vss implements the hierarchical typed signal tree used to model a
// vehicle's state and controls.
//
// # Tree Structure
//
// A tree is assembled once from a declarative definition and never changes
// shape afterwards:
//
//	Vehicle (root)
//	├── Speed                 (Leaf, sensor, float, km/h)
//	├── Chassis               (Branch)
//	│   └── Axle              (Collection: Row1, Row2)
//	│       └── Row1          (Branch)
//	│           └── Wheel     (Collection: Left, Right)
//	└── Body
//	    └── Lights
//	        └── LightSwitch   (Leaf, actuator, string, allowed values)
//
// Branches own named children in declared order. Collections are branches
// whose children are a fixed list of slots, additionally addressable by a
// 1-based index through Element or Row. Leaves are terminal nodes holding a
// typed value cell.
//
// # Paths
//
// A node's path is the "/"-joined list of names from the root (exclusive) to
// the node, e.g. "Chassis/Axle/Row1/Wheel/Left". DottedPath returns the
// qualified VSS form including the root name,
// e.g. "Vehicle.Chassis.Axle.Row1.Wheel.Left".
//
// # Values
//
// Leaf values are validated once, at SetValue: the data type, the allowed
// value set and the numeric range must all hold or the assignment fails and
// the previous value is kept. Each leaf guards its cell with its own lock, so
// concurrent readers never observe a partially written value. There is no
// ordering between updates of different leaves.
package vss
