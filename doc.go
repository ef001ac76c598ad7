// Package intake normalizes loosely-formatted, human-entered financial
// facts into a strictly-typed record. Users describe their finances the
// way they talk about them ("₹1,20,000", "5k", "rent:15000,
// groceries:8000", "Yes"); this package turns those raw strings into a
// clean structure, or reports every failing field at once so the caller
// can re-ask only for what needs fixing.
//
// The core functionalities include:
//   - Amount Parsing: Converting a single loosely formatted numeric string
//     (currency symbols, grouping commas, k/M magnitude suffixes) into a
//     float, with a configurable currency-symbol allow-list.
//   - List Parsing: Accepting multi-item financial fields (commitments,
//     EMIs, investment contributions) in three textual shapes (JSON
//     object, key:value pairs, or bare amounts) and normalizing them into
//     a uniform item list with a recomputed total.
//   - Flag Parsing: Strict Yes/No-style boolean fields.
//   - Orchestration: Validating all eight essential fields in one call,
//     aggregating independent failures instead of stopping at the first
//     one, and emitting exactly one of two payload shapes.
//
// The package is deterministic and side-effect free; every call is
// independent and safe for concurrent use.
//
// This package serves as the foundational logic for the `fsi` command-line
// tool and for the collector agent in the agent package.
package intake
