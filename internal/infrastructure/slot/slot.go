// Package slot implements the persisted session slot: a single restorable
// value keyed by a fixed name, holding the serialized active identity.
// Three interchangeable backends exist — in-memory, file, and Redis — all
// storing the plain JSON payload with no schema version and no integrity
// check.
package slot

// Key is the fixed name the session payload is stored under, in every
// backend.
const Key = "currentUser"
