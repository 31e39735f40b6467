// Package extractors provides implementations of the Extractor interface
// for the supported resume formats. Each extractor turns the raw bytes of
// one format into plain text.
//
// Extractors are registered with the Registry at startup.
package extractors
