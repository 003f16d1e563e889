// Package tracker persists and queries the task collection behind a
// small storage-agnostic interface with plain-text, JSON, and SQLite
// backends.
//
// Task ids are positional: an id is the task's index among incomplete
// tasks in deadline-sorted order, recomputed on every invocation. Ids are
// therefore ephemeral; a listing followed by a mutation in a later
// process run can act on a different task if the collection changed in
// between. The storage formats carry no identifier column, so this stays
// a documented property of the tool rather than something a backend can
// fix on its own.
package tracker
