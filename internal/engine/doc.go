// Package engine implements the mutable data structures learners manipulate.
//
// Each engine owns its backing storage for the lifetime of one run and
// exposes three kinds of methods:
//
//   - Operations (Insert, Pop, Put, AddEdge, ...) that mutate the structure
//     and return a Result whose Message uses the display wording shown to
//     learners, e.g. "Pushed 10 onto stack".
//   - Typed queries (Values, Contains, Neighbors, Inorder, ...) returning
//     plain Go values so callers never parse messages.
//   - Snapshot, which projects the current state into a visual.State.
//
// Precondition violations (overflow, empty pop, bad index, duplicate insert,
// deleting something absent) fail with an *OpError that matches one of the
// sentinel errors via errors.Is. Lookups that simply find nothing (Search,
// Get, Has) never fail.
//
// Engines are not safe for concurrent use; every run creates its own.
package engine
