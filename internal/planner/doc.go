// Package planner implements the in-memory domain state store for a study
// plan session: the profile, subjects with their sub-topics, and exams.
//
// The store owns all entity collections exclusively. Each user-initiated
// mutation is one method, and each method is an atomic state transition:
// the remote effect is attempted first and local state mutates only after
// remote success, so local state never desynchronizes from a failed remote
// call. The only mid-flight window is a subject breakdown, which releases
// the lock during its two gateway calls; a resolution arriving after the
// subject (or the whole session) was torn down applies nothing.
//
// Read access goes through Snapshot and the derived view helpers in
// view.go, which deep-copy and recompute from current state on every call.
package planner
