// Package connectors provides the sources candidates are loaded from.
//
// The filesystem connector expands files and folders into candidates and
// watches folders for changes.
package connectors
