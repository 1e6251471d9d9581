// Package label defines the value types that flow through a reconciliation run.
//
// A [Label] is identified by its exact, case-sensitive name; its color is
// mutable data. Labels read from a remote repository additionally carry the
// API URL used as the target for updates and deletes. A [Repository] is the
// immutable reference to one remote repository's label collection.
package label
