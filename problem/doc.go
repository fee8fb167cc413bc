// Package problem defines the immutable input to the search engine: clients
// (including the depot), vehicle capacity and fleet size, and the
// distance/duration matrices between every pair of clients.
//
// A Data value is constructed once per instance and shared by reference
// across every other component for the lifetime of the search — nothing in
// this package is mutated after construction.
package problem
