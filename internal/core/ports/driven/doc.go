// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Extractor: Turns a candidate's raw bytes into plain text
//   - ExtractorRegistry: Selects the extractor for a format
//   - ExtractionCache: Content-addressed memo of extraction results
//   - CandidateStore: Caller-owned set of uploaded candidates
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
