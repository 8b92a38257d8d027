// Package config defines the settings of the canvas controller and the
// surrounding application, together with loaders for HCL and TOML files.
//
// # Precedence
//
// Settings are resolved in three layers, later layers winning:
//  1. Default()
//  2. a config file (.hcl or .toml), where only the keys present override
//  3. command line flags, applied by the cli package
//
// # File Layout
//
//	canvas {
//	  grid_size         = 20
//	  spatial_cell_size = 256
//	  force_immediate   = false
//	  group_padding     = 24
//	}
//	logging {
//	  level  = "debug"
//	  format = "text"
//	}
//	server {
//	  healthcheck_port = 8080
//	}
//
// The TOML form uses the same names as tables ([canvas], [logging], [server]).
package config
