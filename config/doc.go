// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the uplcp command.
//
// Values come from three layers, later ones winning: the documented
// defaults, an optional YAML file (Load) and the command-line flags
// (Apply). Flag values that do not parse are not fatal: Apply logs a
// warning and keeps the value already in place. Unknown flag names are.
package config
