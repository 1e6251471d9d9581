// Package async provides utilities for parallel task execution with
// positional result collection.
//
// [RunParallel] runs named tasks concurrently and joins their errors.
// [Map] and [Collect] fan a function out over a slice and return the results
// in input order, regardless of the order in which the goroutines finish.
// Every helper waits for all started work to complete before returning.
package async
