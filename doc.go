// Package travel provides the types and functions to plan trips and track
// their expenses. It is designed to be local-first: the whole state is a
// single document kept in a local key-value store and rewritten on every
// change.
//
// The core functionalities include:
//   - Trip management: trips made of consecutive daily plans, each with a
//     schedule of timed locations, a memo and a list of expenses.
//   - Schedule normalization: repairing inverted time ranges and ordering a
//     day by start time when an edit pass is committed.
//   - Currency ledger: exchange rates relative to the TWD base unit and the
//     conversion of a day's expenses into a display currency.
//   - Data persistence: loading and saving the document through a pluggable
//     Storage, so that tests can substitute an in-memory store.
//
// This package serves as the foundational logic for the `trv` command-line
// tool.
package travel
