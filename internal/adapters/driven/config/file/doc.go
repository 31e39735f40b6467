// Package file provides the file-based ConfigStore. Settings persist to a
// TOML file in the resrank config directory.
package file
