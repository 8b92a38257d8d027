// Package scene reads canvas scenes from HCL files.
//
// A scene is a graph document plus optional drag scripts that replay pointer
// gestures against a controller. One or more files, or directories holding
// .hcl files, are merged into a single scene in lexical path order.
//
//	node "source" {
//	  label    = "Source"
//	  position = [0, 0]
//	  size     = [120, 80]
//	  output "out" {}
//	}
//
//	node "sink" {
//	  position = [grid * 10, 0]
//	  input "in" { label = "In" }
//	}
//
//	connection "source-to-sink" {
//	  source      = "source"
//	  source_port = "out"
//	  target      = "sink"
//	  target_port = "in"
//	}
//
//	annotation "group" "pipeline" {
//	  title    = "Pipeline"
//	  position = [-20, -20]
//	  size     = [360, 140]
//	}
//
//	wrap {
//	  title = "Inputs"
//	  nodes = ["source"]
//	}
//
//	drag "source" {
//	  select = ["source", "sink"]
//	  moves  = [[10, 0], [grid, grid]]
//	  cancel = false
//	}
//
// # Expressions
//
// Positions, sizes and drag moves are HCL expressions evaluated against a
// single variable, grid, holding the configured snap size.
//
// # Why Scene Exists
//
// The controller has no persistence of its own. Scenes give the command line
// tool and the tests a way to build realistic graphs without Go code.
package scene
